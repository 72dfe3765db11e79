package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atsoptimizer/ats-backend/internal/services"
)

type DocumentHandler struct {
	docService services.DocumentService
	worker     services.Worker
}

func NewDocumentHandler(docService services.DocumentService, worker services.Worker) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		worker:     worker,
	}
}

// HandleUpload handles POST /documents. The file arrives as multipart field
// "file" with the owning user in form field "user_id"; parsing happens in
// the background worker.
func (h *DocumentHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	userID := c.FormValue("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	response, err := h.docService.Upload(c.Context(), userID, fileHeader)
	if err != nil {
		return respondError(c, err)
	}

	if id, parseErr := uuid.Parse(response.ID); parseErr == nil {
		h.worker.EnqueueDocument(id)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleGet handles GET /documents/:id
func (h *DocumentHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	document, err := h.docService.GetDocument(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(document)
}

// HandleListByUser handles GET /documents/user/:userId
func (h *DocumentHandler) HandleListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	documents, err := h.docService.GetByUser(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"documents": documents,
		"count":     len(documents),
	})
}

// HandleDelete handles DELETE /documents/:id
func (h *DocumentHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.docService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
