package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resumeiq/internal/models"
	"alfredoptarigan/resumeiq/internal/repositories"
	"alfredoptarigan/resumeiq/internal/services"
)

const testMaxFileSize = 1024 * 1024

type stubParser struct {
	content *services.PDFContent
	err     error
	calls   int
}

func (s *stubParser) ExtractText(data []byte) (*services.PDFContent, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

type stubGemini struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGemini) ModelName() string {
	return "gemini-test"
}

type memoryRepo struct {
	analyses []models.Analysis
	err      error
}

func (r *memoryRepo) Create(analysis *models.Analysis) error {
	if r.err != nil {
		return r.err
	}
	r.analyses = append(r.analyses, *analysis)
	return nil
}

func (r *memoryRepo) FindByID(id uuid.UUID) (*models.Analysis, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.analyses {
		if r.analyses[i].ID == id {
			return &r.analyses[i], nil
		}
	}
	return nil, repositories.ErrAnalysisNotFound
}

func (r *memoryRepo) FindRecent(limit int) ([]models.Analysis, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.analyses) < limit {
		limit = len(r.analyses)
	}
	return r.analyses[:limit], nil
}

type testEnv struct {
	app    *fiber.App
	parser *stubParser
	gemini *stubGemini
	repo   *memoryRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		parser: &stubParser{content: &services.PDFContent{
			Text:      "Go engineer with PostgreSQL and REST APIs",
			PageCount: 1,
		}},
		gemini: &stubGemini{response: "85%\nMissing: distributed systems, Kubernetes\nSummary: strong backend profile"},
		repo:   &memoryRepo{},
	}

	uploadService := services.NewUploadService(testMaxFileSize)
	analyzer := services.NewAnalyzerService(env.parser, env.gemini, env.repo)

	pageHandler := NewPageHandler(analyzer, uploadService, testMaxFileSize, env.gemini.ModelName())
	analyzeHandler := NewAnalyzeHandler(analyzer, uploadService)
	resultHandler := NewResultHandler(env.repo)

	app := fiber.New()
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/analyze", pageHandler.HandleAnalyze)
	api := app.Group("/api/v1")
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/analyses", resultHandler.HandleListResults)
	api.Get("/analyses/:id", resultHandler.HandleGetResult)

	env.app = app
	return env
}

// analyzeRequest builds a multipart form. An empty filename omits the file part.
func analyzeRequest(t *testing.T, path, jobDescription, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("job_description", jobDescription))
	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

var errUpstream = errors.New("upstream unavailable")
