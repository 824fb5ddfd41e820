package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resumeiq/internal/models"
	"alfredoptarigan/resumeiq/internal/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetResult handles GET /api/v1/analyses/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Analysis not found",
			})
		}
		return err
	}

	return c.JSON(analysis)
}

// HandleListResults handles GET /api/v1/analyses
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 100",
		})
	}

	analyses, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return err
	}

	return c.JSON(models.AnalysisListResponse{
		Analyses: analyses,
		Count:    len(analyses),
	})
}
