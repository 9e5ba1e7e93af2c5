package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
	"github.com/jngeno/stablemate/services"
)

type GoalRequest struct {
	HorseID     *string `json:"horse_id" validate:"omitempty,uuid"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date"`
}

type MilestoneRequest struct {
	Title string `json:"title" validate:"required"`
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	if req.HorseID != nil && *req.HorseID != "" {
		horseID, _ := uuid.Parse(*req.HorseID)
		var horse models.Horse
		if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
		}
		goal.HorseID = &horseID
	}

	if req.TargetDate != nil && *req.TargetDate != "" {
		target, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid target_date, expected YYYY-MM-DD"})
		}
		goal.TargetDate = &target
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create goal"})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func ListGoals(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var goals []models.Goal
	database.DB.Preload("Milestones").Where("user_id = ?", userID).Order("created_at desc").Find(&goals)
	return c.JSON(goals)
}

// CompleteGoal marks the goal done and runs an achievement pass before
// responding, so the badges are already persisted when the client refetches.
func CompleteGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	var goal models.Goal
	if err := database.DB.First(&goal, "id = ? AND user_id = ?", goalID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	if !goal.IsCompleted {
		now := time.Now()
		goal.IsCompleted = true
		goal.CompletedAt = &now
		if err := database.DB.Save(&goal).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete goal"})
		}
	}

	services.EvaluateAchievements(database.DB, userID)

	return c.JSON(goal)
}

func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	result := database.DB.Delete(&models.Goal{}, "id = ? AND user_id = ?", goalID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func AddMilestone(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	var goal models.Goal
	if err := database.DB.First(&goal, "id = ? AND user_id = ?", goalID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	var req MilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	milestone := models.Milestone{
		GoalID: goal.ID,
		Title:  req.Title,
	}
	if err := database.DB.Create(&milestone).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create milestone"})
	}

	return c.Status(fiber.StatusCreated).JSON(milestone)
}

func CompleteMilestone(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	milestoneID := c.Params("milestoneId")

	var milestone models.Milestone
	err := database.DB.
		Joins("JOIN goals ON goals.id = milestones.goal_id").
		Where("milestones.id = ? AND goals.user_id = ?", milestoneID, userID).
		First(&milestone).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Milestone not found"})
	}

	if !milestone.IsCompleted {
		now := time.Now()
		milestone.IsCompleted = true
		milestone.CompletedAt = &now
		database.DB.Save(&milestone)
	}

	return c.JSON(milestone)
}
