package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jngeno/stablemate/handlers"
	"github.com/jngeno/stablemate/middleware"
)

func DocumentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	documents := api.Group("/documents", middleware.Protected())
	documents.Post("", handlers.CreateDocument)
	documents.Get("", handlers.ListDocuments)
	documents.Delete("/:documentId", handlers.DeleteDocument)
	documents.Post("/:documentId/ask", handlers.AskDocumentQuestion)
}

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
