package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// Analysis is one recorded pipeline run. Only written when history is enabled.
type Analysis struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeFilename string         `gorm:"type:text" json:"resume_filename"`
	JobDescription string         `gorm:"type:text;not null" json:"job_description"`
	Model          string         `gorm:"type:text" json:"model"`
	Status         AnalysisStatus `gorm:"not null" json:"status"`
	Result         *string        `gorm:"type:text" json:"result,omitempty"`
	ErrorMessage   *string        `gorm:"type:text" json:"error_message,omitempty"`
	PageCount      int            `json:"page_count"`
	DurationMs     int64          `json:"duration_ms"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
