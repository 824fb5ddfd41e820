package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrNoTextContent = errors.New("no text content found in PDF")

type PDFParserService interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the plain text of every page in page order, with
// no separator between pages. Every failure is an *ExtractionError.
func (p *pdfParserService) ExtractText(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &ExtractionError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("failed to open PDF: %w", err)}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ExtractionError{Err: fmt.Errorf("failed to read page %d: %w", pageIndex, err)}
		}

		// GetPlainText emits a newline for every BT operator, including the
		// one that opens the page.
		textBuilder.WriteString(strings.TrimPrefix(text, "\n"))
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, &ExtractionError{Err: ErrNoTextContent}
	}

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}
