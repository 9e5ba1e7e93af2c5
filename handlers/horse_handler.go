package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
)

type HorseRequest struct {
	Name             string  `json:"name" validate:"required"`
	Breed            string  `json:"breed"`
	DateOfBirth      *string `json:"date_of_birth"`
	Color            string  `json:"color"`
	Gender           string  `json:"gender" validate:"omitempty,oneof=mare stallion gelding"`
	PersonalityTrait *string `json:"personality_trait"`
	FunFact          *string `json:"fun_fact"`
	PhotoURL         *string `json:"photo_url" validate:"omitempty,url"`
}

func (r *HorseRequest) apply(horse *models.Horse) error {
	horse.Name = r.Name
	horse.Breed = r.Breed
	horse.Color = r.Color
	horse.Gender = r.Gender
	horse.PersonalityTrait = r.PersonalityTrait
	horse.FunFact = r.FunFact
	horse.PhotoURL = r.PhotoURL

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return err
		}
		horse.DateOfBirth = &dob
	} else {
		horse.DateOfBirth = nil
	}
	return nil
}

func CreateHorse(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req HorseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	horse := models.Horse{UserID: userID}
	if err := req.apply(&horse); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date_of_birth, expected YYYY-MM-DD"})
	}

	if err := database.DB.Create(&horse).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create horse"})
	}

	return c.Status(fiber.StatusCreated).JSON(horse)
}

func ListHorses(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var horses []models.Horse
	database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&horses)
	return c.JSON(horses)
}

func GetHorse(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	horseID := c.Params("horseId")

	var horse models.Horse
	if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
	}
	return c.JSON(horse)
}

func UpdateHorse(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	horseID := c.Params("horseId")

	var horse models.Horse
	if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
	}

	var req HorseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.apply(&horse); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date_of_birth, expected YYYY-MM-DD"})
	}

	database.DB.Save(&horse)
	return c.JSON(horse)
}

func DeleteHorse(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	horseID := c.Params("horseId")

	result := database.DB.Delete(&models.Horse{}, "id = ? AND user_id = ?", horseID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete horse"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
