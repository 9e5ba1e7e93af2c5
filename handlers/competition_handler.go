package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
)

type CompetitionRequest struct {
	HorseID    string  `json:"horse_id" validate:"required,uuid"`
	Name       string  `json:"name" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Location   string  `json:"location"`
	Discipline string  `json:"discipline"`
	Placement  *string `json:"placement"`
	Notes      string  `json:"notes"`
}

func CreateCompetition(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CompetitionRequest
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

	competition := models.Competition{
		UserID:     userID,
		HorseID:    horseID,
		Name:       req.Name,
		Date:       date,
		Location:   req.Location,
		Discipline: req.Discipline,
		Placement:  req.Placement,
		Notes:      req.Notes,
	}
	if err := database.DB.Create(&competition).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create competition"})
	}

	return c.Status(fiber.StatusCreated).JSON(competition)
}

func ListCompetitions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := database.DB.Preload("Horse").Where("user_id = ?", userID)
	if horseID := c.Query("horse_id"); horseID != "" {
		query = query.Where("horse_id = ?", horseID)
	}

	var competitions []models.Competition
	query.Order("date desc").Find(&competitions)
	return c.JSON(competitions)
}

func UpdateCompetition(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	competitionID := c.Params("competitionId")

	var competition models.Competition
	if err := database.DB.First(&competition, "id = ? AND user_id = ?", competitionID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competition not found"})
	}

	var req CompetitionRequest
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

	competition.Name = req.Name
	competition.Date = date
	competition.Location = req.Location
	competition.Discipline = req.Discipline
	competition.Placement = req.Placement
	competition.Notes = req.Notes
	database.DB.Save(&competition)

	return c.JSON(competition)
}

func DeleteCompetition(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	competitionID := c.Params("competitionId")

	result := database.DB.Delete(&models.Competition{}, "id = ? AND user_id = ?", competitionID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete competition"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competition not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
