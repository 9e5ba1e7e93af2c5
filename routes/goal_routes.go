package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func GoalRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	goals := api.Group("/goals", middleware.Protected())
	goals.Post("", handlers.CreateGoal)
	goals.Get("", handlers.ListGoals)
	goals.Post("/:goalId/complete", handlers.CompleteGoal)
	goals.Delete("/:goalId", handlers.DeleteGoal)
	goals.Post("/:goalId/milestones", handlers.AddMilestone)

	milestones := api.Group("/milestones", middleware.Protected())
	milestones.Post("/:milestoneId/complete", handlers.CompleteMilestone)
}
