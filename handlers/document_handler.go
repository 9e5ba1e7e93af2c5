package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/middleware"
	"github.com/jngeno/stablemate/models"
	"github.com/jngeno/stablemate/services"
)

type DocumentRequest struct {
	HorseID       *string `json:"horse_id" validate:"omitempty,uuid"`
	FileName      string  `json:"file_name" validate:"required"`
	FileURL       string  `json:"file_url" validate:"required,url"`
	ExtractedText string  `json:"extracted_text"`
}

type DocumentQuestionRequest struct {
	Question string `json:"question" validate:"required,min=3"`
}

// CreateDocument stores metadata for a file already uploaded to Cloudinary,
// including the text the client extracted from it.
func CreateDocument(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	document := models.Document{
		UserID:        userID,
		FileName:      req.FileName,
		FileURL:       req.FileURL,
		ExtractedText: req.ExtractedText,
	}

	if req.HorseID != nil && *req.HorseID != "" {
		horseID, _ := uuid.Parse(*req.HorseID)
		var horse models.Horse
		if err := database.DB.First(&horse, "id = ? AND user_id = ?", horseID, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Horse not found"})
		}
		document.HorseID = &horseID
	}

	if err := database.DB.Create(&document).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save document"})
	}

	return c.Status(fiber.StatusCreated).JSON(document)
}

func ListDocuments(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var documents []models.Document
	database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&documents)
	return c.JSON(documents)
}

func DeleteDocument(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	documentID := c.Params("documentId")

	result := database.DB.Delete(&models.Document{}, "id = ? AND user_id = ?", documentID, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete document"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AskDocumentQuestion forwards a question about one of the user's documents
// to the language model and returns its answer.
func AskDocumentQuestion(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	documentID := c.Params("documentId")

	var document models.Document
	if err := database.DB.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	var req DocumentQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if document.ExtractedText == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "No text was extracted from this document"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	answer, err := services.AnswerDocumentQuestion(ctx, req.Question, document.ExtractedText)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to get an answer for this document"})
	}

	return c.JSON(fiber.Map{"answer": answer})
}
