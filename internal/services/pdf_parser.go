package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

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

// ExtractText concatenates the plain text of every page in page order. A
// failure on any page aborts the whole extraction.
func (p *pdfParserService) ExtractText(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			return nil, fmt.Errorf("page %d not found", pageIndex)
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}
