package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func HorseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	horses := api.Group("/horses", middleware.Protected())
	horses.Post("", handlers.CreateHorse)
	horses.Get("", handlers.ListHorses)
	horses.Get("/:horseId", handlers.GetHorse)
	horses.Put("/:horseId", handlers.UpdateHorse)
	horses.Delete("/:horseId", handlers.DeleteHorse)
}
