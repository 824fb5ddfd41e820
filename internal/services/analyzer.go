package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resumeiq/internal/models"
	"alfredoptarigan/resumeiq/internal/repositories"
)

const MissingInputMessage = "Please upload a resume and provide a job description."

type AnalyzerService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

type AnalysisRequest struct {
	JobDescription string
	Resume         *models.UploadedDocument
}

// Validate reports a *ValidationError when either input is absent.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.JobDescription) == "" || r.Resume == nil || len(r.Resume.Data) == 0 {
		return &ValidationError{Message: MissingInputMessage}
	}
	return nil
}

type AnalysisResult struct {
	ID        uuid.UUID
	Text      string
	PageCount int
	Model     string
	CreatedAt time.Time
	Duration  time.Duration
}

type analyzerService struct {
	pdfParser     PDFParserService
	geminiService GeminiService
	promptBuilder *PromptBuilder
	analysisRepo  repositories.AnalysisRepository
}

// NewAnalyzerService wires the pipeline. analysisRepo may be nil, in which
// case nothing is recorded.
func NewAnalyzerService(
	pdfParser PDFParserService,
	geminiService GeminiService,
	analysisRepo repositories.AnalysisRepository,
) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		analysisRepo:  analysisRepo,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	analysisID := uuid.New()
	log.Printf("🔄 Starting analysis %s for %q\n", analysisID, req.Resume.Filename)

	// Step 1: Extract resume text
	content, err := a.pdfParser.ExtractText(req.Resume.Data)
	if err != nil {
		a.recordFailure(analysisID, req, 0, start, err)
		return nil, err
	}
	log.Printf("📄 Extracted %d pages, %d characters", content.PageCount, len(content.Text))

	// Step 2: Build prompt
	prompt := a.promptBuilder.BuildATSPrompt(content.Text, req.JobDescription)
	log.Printf("📝 ATS prompt length: %d characters", len(prompt))

	// Step 3: Single completion call
	response, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		a.recordFailure(analysisID, req, content.PageCount, start, err)
		return nil, err
	}
	log.Printf("✅ Analysis %s response received: %d characters", analysisID, len(response))

	result := &AnalysisResult{
		ID:        analysisID,
		Text:      response,
		PageCount: content.PageCount,
		Model:     a.geminiService.ModelName(),
		CreatedAt: start,
		Duration:  time.Since(start),
	}
	a.recordSuccess(req, result)

	return result, nil
}

func (a *analyzerService) recordSuccess(req AnalysisRequest, result *AnalysisResult) {
	if a.analysisRepo == nil {
		return
	}

	text := result.Text
	a.save(&models.Analysis{
		ID:             result.ID,
		ResumeFilename: req.Resume.Filename,
		JobDescription: req.JobDescription,
		Model:          result.Model,
		Status:         models.StatusCompleted,
		Result:         &text,
		PageCount:      result.PageCount,
		DurationMs:     result.Duration.Milliseconds(),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      time.Now(),
	})
}

func (a *analyzerService) recordFailure(id uuid.UUID, req AnalysisRequest, pageCount int, start time.Time, cause error) {
	log.Printf("❌ Analysis %s failed: %v", id, cause)
	if a.analysisRepo == nil {
		return
	}

	msg := cause.Error()
	a.save(&models.Analysis{
		ID:             id,
		ResumeFilename: req.Resume.Filename,
		JobDescription: req.JobDescription,
		Model:          a.geminiService.ModelName(),
		Status:         models.StatusFailed,
		ErrorMessage:   &msg,
		PageCount:      pageCount,
		DurationMs:     time.Since(start).Milliseconds(),
		CreatedAt:      start,
		UpdatedAt:      time.Now(),
	})
}

func (a *analyzerService) save(analysis *models.Analysis) {
	if err := a.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Warning: %v", fmt.Errorf("failed to record analysis %s: %w", analysis.ID, err))
	}
}
