package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"alfredoptarigan/resumeiq/internal/models"
)

type UploadService interface {
	ReadDocument(file *multipart.FileHeader) (*models.UploadedDocument, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadDocument loads the uploaded resume into memory. A nil or empty file
// yields a nil document so the analyzer reports it as missing.
func (s *uploadService) ReadDocument(file *multipart.FileHeader) (*models.UploadedDocument, error) {
	if file == nil || file.Size == 0 {
		return nil, nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid file type %q. Please upload your resume as a PDF.", ext)}
	}

	if file.Size > s.maxFileSize {
		return nil, &ValidationError{Message: fmt.Sprintf("Resume file too large. Max size: %d bytes", s.maxFileSize)}
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, &ValidationError{Message: fmt.Sprintf("Resume file too large. Max size: %d bytes", s.maxFileSize)}
	}

	return &models.UploadedDocument{
		Filename: file.Filename,
		Data:     data,
	}, nil
}
