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

type EarnedAchievement struct {
	AchievementID string     `json:"achievement_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	EarnedAt      string     `json:"earned_at"`
	HorseID       *uuid.UUID `json:"horse_id,omitempty"`
}

// GetAchievementCatalog lists every badge the app can award.
func GetAchievementCatalog(c *fiber.Ctx) error {
	catalog := make([]fiber.Map, 0, len(services.AchievementCatalog))
	for _, def := range services.AchievementCatalog {
		catalog = append(catalog, fiber.Map{
			"id":          def.ID,
			"title":       def.Title,
			"description": def.Description,
			"icon":        def.Icon,
		})
	}
	return c.JSON(catalog)
}

// GetMyAchievements runs an evaluation pass and then returns everything the
// user has earned. Evaluation failures are logged, never surfaced, so the
// badges page always renders.
func GetMyAchievements(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	services.EvaluateAchievements(database.DB, userID)

	var awards []models.UserAchievement
	database.DB.Where("user_id = ?", userID).Order("earned_at asc").Find(&awards)

	earned := make([]EarnedAchievement, 0, len(awards))
	for _, award := range awards {
		entry := EarnedAchievement{
			AchievementID: award.AchievementID,
			EarnedAt:      award.EarnedAt.Format(time.RFC3339),
			HorseID:       award.HorseID,
		}
		// Historical rows may reference ids no longer in the catalog.
		if def, ok := services.FindDefinition(award.AchievementID); ok {
			entry.Title = def.Title
			entry.Description = def.Description
			entry.Icon = def.Icon
		} else {
			entry.Title = award.AchievementID
		}
		earned = append(earned, entry)
	}

	return c.JSON(earned)
}
