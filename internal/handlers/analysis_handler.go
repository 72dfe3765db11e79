package handlers

import (
	"github.com/gofiber/fiber/v2"

	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/services"
)

type AnalysisHandler struct {
	analysisService services.AnalysisService
}

func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// HandleCreate handles POST /analysis. The analysis runs synchronously: the
// response carries the completed result, or an error if any stage failed.
func (h *AnalysisHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	analysis, err := h.analysisService.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(analysis)
}

// HandleGet handles GET /analysis/:id
func (h *AnalysisHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	analysis, err := h.analysisService.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(analysis)
}

// HandleListByUser handles GET /analysis/user/:userId
func (h *AnalysisHandler) HandleListByUser(c *fiber.Ctx) error {
	analyses, err := h.analysisService.GetByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// HandleListByDocument handles GET /analysis/document/:id
func (h *AnalysisHandler) HandleListByDocument(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	analyses, err := h.analysisService.GetByDocument(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// HandleListByJob handles GET /analysis/job/:id
func (h *AnalysisHandler) HandleListByJob(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	analyses, err := h.analysisService.GetByJob(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// HandleDelete handles DELETE /analysis/:id
func (h *AnalysisHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.analysisService.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
