package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/services"
)

// SearchCompetitionRegistry proxies a free-text search to the external
// competition registry. The scrape is best effort, so the response is always
// 200 with whatever could be parsed, possibly an empty list.
func SearchCompetitionRegistry(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter q is required"})
	}

	results := services.SearchCompetitionRegistry(c.Context(), query)
	return c.JSON(fiber.Map{"results": results})
}
