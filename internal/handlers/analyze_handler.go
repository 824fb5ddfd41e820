package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resumeiq/internal/models"
	"alfredoptarigan/resumeiq/internal/services"
)

type AnalyzeHandler struct {
	analyzerService services.AnalyzerService
	uploadService   services.UploadService
}

func NewAnalyzeHandler(
	analyzerService services.AnalyzerService,
	uploadService services.UploadService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzerService: analyzerService,
		uploadService:   uploadService,
	}
}

// HandleAnalyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	req, err := readAnalysisRequest(c, h.uploadService)
	if err != nil {
		return errorJSON(c, err)
	}

	result, err := h.analyzerService.Analyze(c.UserContext(), req)
	if err != nil {
		if _, kind, _ := classifyError(err); kind != "validation_error" {
			log.Printf("⚠️  API analysis failed (%s): %v", kind, err)
		}
		return errorJSON(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		ID:        result.ID.String(),
		Result:    result.Text,
		PageCount: result.PageCount,
		Model:     result.Model,
		CreatedAt: result.CreatedAt,
	})
}
