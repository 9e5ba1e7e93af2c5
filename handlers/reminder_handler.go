package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
)

type ReminderRequest struct {
	HorseID *string `json:"horse_id" validate:"omitempty,uuid"`
	Title   string  `json:"title" validate:"required"`
	Notes   string  `json:"notes"`
	DueAt   string  `json:"due_at" validate:"required"`
}

func CreateReminder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req ReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_at, expected RFC3339 timestamp"})
	}

	reminder := models.Reminder{
		UserID: userID,
		Title:  req.Title,
		Notes:  req.Notes,
		DueAt:  dueAt,
	}

	if req.HorseID != nil && *req.HorseID != "" {
		horseID, _ := uuid.Parse(*req.HorseID)
		var horse models.Horse
		if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
		}
		reminder.HorseID = &horseID
	}

	if err := database.DB.Create(&reminder).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create reminder"})
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func ListReminders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var reminders []models.Reminder
	database.DB.Where("user_id = ?", userID).Order("due_at asc").Find(&reminders)
	return c.JSON(reminders)
}

func DeleteReminder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	reminderID := c.Params("reminderId")

	result := database.DB.Delete(&models.Reminder{}, "id = ? AND user_id = ?", reminderID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete reminder"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reminder not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
