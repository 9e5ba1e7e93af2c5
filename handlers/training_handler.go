package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
)

type TrainingSessionRequest struct {
	HorseID         string `json:"horse_id" validate:"required,uuid"`
	Date            string `json:"date" validate:"required"`
	Discipline      string `json:"discipline"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Intensity       string `json:"intensity" validate:"omitempty,oneof=light moderate intense"`
	Notes           string `json:"notes"`
}

func CreateTrainingSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req TrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	horseID, _ := uuid.Parse(req.HorseID)
	var horse models.Horse
	if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
	}

	session := models.TrainingSession{
		UserID:          userID,
		HorseID:         horseID,
		Date:            date,
		Discipline:      req.Discipline,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Notes:           req.Notes,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create training session"})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func ListTrainingSessions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := database.DB.Preload("Horse").Where("user_id = ?", userID)
	if horseID := c.Query("horse_id"); horseID != "" {
		query = query.Where("horse_id = ?", horseID)
	}

	var sessions []models.TrainingSession
	query.Order("date desc").Find(&sessions)
	return c.JSON(sessions)
}

func DeleteTrainingSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	sessionID := c.Params("sessionId")

	result := database.DB.Delete(&models.TrainingSession{}, "id = ? AND user_id = ?", sessionID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete training session"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
