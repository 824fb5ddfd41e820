package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resumeiq/internal/models"
	"alfredoptarigan/resumeiq/internal/services"
	"alfredoptarigan/resumeiq/internal/web"
)

const (
	extractionMessage = "We couldn't read text from your resume. Please upload a text-based, unencrypted PDF and try again."
	serviceMessage    = "The AI analysis service is unavailable right now. Please try again in a moment."
	internalMessage   = "Something went wrong while analyzing your resume. Please try again."
)

// classifyError maps a pipeline error to an HTTP status, a machine-readable
// type and a message that is safe to show to the user.
func classifyError(err error) (int, string, string) {
	var validationErr *services.ValidationError
	var extractionErr *services.ExtractionError
	var serviceErr *services.ServiceError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, "validation_error", validationErr.Message
	case errors.As(err, &extractionErr):
		return fiber.StatusUnprocessableEntity, "extraction_error", extractionMessage
	case errors.As(err, &serviceErr):
		return fiber.StatusBadGateway, "service_error", serviceMessage
	default:
		return fiber.StatusInternalServerError, "internal_error", internalMessage
	}
}

// readAnalysisRequest collects the form inputs. A missing file is not an
// error here; the analyzer reports it together with a missing description.
func readAnalysisRequest(c *fiber.Ctx, uploadService services.UploadService) (services.AnalysisRequest, error) {
	req := services.AnalysisRequest{
		JobDescription: c.FormValue("job_description"),
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return req, nil
	}

	doc, err := uploadService.ReadDocument(file)
	if err != nil {
		return req, err
	}
	req.Resume = doc

	return req, nil
}

func errorJSON(c *fiber.Ctx, err error) error {
	status, kind, message := classifyError(err)
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Type:  kind,
	})
}

// NewErrorHandler returns the app-wide Fiber error handler. Errors raised
// before the page handler runs, such as an oversized body, re-render the
// page for POST /analyze and are JSON everywhere else.
func NewErrorHandler(maxFileSize int64, model string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if c.Method() == fiber.MethodPost && c.Path() == "/analyze" {
			data := web.NewPageData(maxFileSize, model)
			if code == fiber.StatusRequestEntityTooLarge {
				data.Warning = fmt.Sprintf("Resume file too large. Max size: %d MB", data.MaxFileSizeMB)
			} else {
				data.Error = internalMessage
			}
			return renderPage(c, code, data)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
}
