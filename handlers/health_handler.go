package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
)

type HealthLogRequest struct {
	HorseID string `json:"horse_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=vet farrier dental vaccination other"`
	Notes   string `json:"notes"`
}

func CreateHealthLog(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req HealthLogRequest
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

	entry := models.HealthLog{
		UserID:  userID,
		HorseID: horseID,
		Date:    date,
		Type:    req.Type,
		Notes:   req.Notes,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create health log"})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func ListHealthLogs(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := database.DB.Preload("Horse").Where("user_id = ?", userID)
	if horseID := c.Query("horse_id"); horseID != "" {
		query = query.Where("horse_id = ?", horseID)
	}

	var entries []models.HealthLog
	query.Order("date desc").Find(&entries)
	return c.JSON(entries)
}

func DeleteHealthLog(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	logID := c.Params("logId")

	result := database.DB.Delete(&models.HealthLog{}, "id = ? AND user_id = ?", logID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete health log"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Health log not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
