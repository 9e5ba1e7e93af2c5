package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func TrainingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	training := api.Group("/training-sessions", middleware.Protected())
	training.Post("", handlers.CreateTrainingSession)
	training.Get("", handlers.ListTrainingSessions)
	training.Delete("/:sessionId", handlers.DeleteTrainingSession)
}

func HealthLogRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	healthLogs := api.Group("/health-logs", middleware.Protected())
	healthLogs.Post("", handlers.CreateHealthLog)
	healthLogs.Get("", handlers.ListHealthLogs)
	healthLogs.Delete("/:logId", handlers.DeleteHealthLog)
}

func CompetitionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	competitions := api.Group("/competitions", middleware.Protected())
	competitions.Post("", handlers.CreateCompetition)
	competitions.Get("", handlers.ListCompetitions)
	competitions.Put("/:competitionId", handlers.UpdateCompetition)
	competitions.Delete("/:competitionId", handlers.DeleteCompetition)

	// Proxy to the external registry, separate from the user's own records.
	competitions.Get("/registry/search", handlers.SearchCompetitionRegistry)
}
