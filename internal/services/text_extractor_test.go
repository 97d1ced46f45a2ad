package services

import (
	"errors"
	"strings"
	"testing"

	"alfredoptarigan/resume-skill-ranker/internal/pdftest"
)

func TestTextExtractor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := writeFile(t, dir, "resume.txt", []byte("\ufeffPython developer"))
	pdfPath := writeFile(t, dir, "resume.pdf", pdftest.Build("Docker and Linux"))
	latin1 := writeFile(t, dir, "latin1.txt", []byte{'c', 'a', 'f', 0xe9})

	extractor := NewTextExtractorService(NewPDFParserService())

	tests := []struct {
		name    string
		path    string
		ext     string
		prefix  string
		wantErr error
	}{
		{name: "plain text without byte order mark", path: txt, ext: ".txt", prefix: "Python developer"},
		{name: "upper case extension", path: txt, ext: ".TXT", prefix: "Python developer"},
		{name: "pdf", path: pdfPath, ext: ".pdf", prefix: "Docker and Linux"},
		{name: "invalid utf8", path: latin1, ext: ".txt", wantErr: ErrInvalidEncoding},
		{name: "unsupported", path: txt, ext: ".docx", wantErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text, err := extractor.ExtractText(tt.path, tt.ext)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if text != "" {
					t.Fatalf("expected empty text on error, got %q", text)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(text, tt.prefix) {
				t.Fatalf("expected text starting with %q, got %q", tt.prefix, text)
			}
		})
	}
}
