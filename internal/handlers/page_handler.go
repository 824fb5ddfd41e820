package handlers

import (
	"bytes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resumeiq/internal/services"
	"alfredoptarigan/resumeiq/internal/web"
)

type PageHandler struct {
	analyzerService services.AnalyzerService
	uploadService   services.UploadService
	maxFileSize     int64
	model           string
}

func NewPageHandler(
	analyzerService services.AnalyzerService,
	uploadService services.UploadService,
	maxFileSize int64,
	model string,
) *PageHandler {
	return &PageHandler{
		analyzerService: analyzerService,
		uploadService:   uploadService,
		maxFileSize:     maxFileSize,
		model:           model,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, web.NewPageData(h.maxFileSize, h.model))
}

// HandleAnalyze handles POST /analyze and re-renders the page with the
// result, a warning, or an error.
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	data := web.NewPageData(h.maxFileSize, h.model)

	req, err := readAnalysisRequest(c, h.uploadService)
	data.JobDescription = req.JobDescription
	if err == nil {
		var result *services.AnalysisResult
		result, err = h.analyzerService.Analyze(c.UserContext(), req)
		if err == nil {
			data.Result = result.Text
			return renderPage(c, fiber.StatusOK, data)
		}
	}

	status, kind, message := classifyError(err)
	if kind == "validation_error" {
		data.Warning = message
	} else {
		log.Printf("⚠️  Page analysis failed (%s): %v", kind, err)
		data.Error = message
	}

	return renderPage(c, status, data)
}

func renderPage(c *fiber.Ctx, status int, data web.PageData) error {
	var buf bytes.Buffer
	if err := web.RenderPage(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
