package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func AchievementRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	achievements := api.Group("/achievements")
	achievements.Get("/catalog", handlers.GetAchievementCatalog)
	achievements.Get("/me", middleware.Protected(), handlers.GetMyAchievements)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
