package models

import "time"

// UploadedDocument is the request-scoped resume upload, held in memory only.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

type AnalyzeResponse struct {
	ID        string    `json:"id"`
	Result    string    `json:"result"`
	PageCount int       `json:"page_count"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

type AnalysisListResponse struct {
	Analyses []Analysis `json:"analyses"`
	Count    int        `json:"count"`
}
