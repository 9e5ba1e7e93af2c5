package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func ReminderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reminders := api.Group("/reminders", middleware.Protected())
	reminders.Post("", handlers.CreateReminder)
	reminders.Get("", handlers.ListReminders)
	reminders.Delete("/:reminderId", handlers.DeleteReminder)
}
