package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidEncoding   = errors.New("file is not valid UTF-8 text")
)

type TextExtractorService interface {
	ExtractText(filePath, ext string) (string, error)
}

type textExtractorService struct {
	pdfParser PDFParserService
}

func NewTextExtractorService(pdfParser PDFParserService) TextExtractorService {
	return &textExtractorService{pdfParser: pdfParser}
}

// ExtractText dispatches on the (case-insensitive) extension. On error the returned
// text is always empty.
func (t *textExtractorService) ExtractText(filePath, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		content, err := t.pdfParser.ExtractText(filePath)
		if err != nil {
			return "", err
		}
		return content.Text, nil

	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		if !utf8.Valid(data) {
			return "", ErrInvalidEncoding
		}
		return strings.TrimPrefix(string(data), "\ufeff"), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
