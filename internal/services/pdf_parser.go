package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the text of every page in page order, one line of output per
// line of text on the page. Any page that fails to decode fails the whole document; the
// file is closed on every path.
func (p *pdfParserService) ExtractText(filePath string) (content *PDFContent, err error) {
	// the pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		textBuilder.WriteString(pageText(page.Content().Text))
		textBuilder.WriteString("\n")
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

// pageText lays glyphs out in content stream order. GetPlainText runs adjacent lines
// together, so a newline is written whenever the baseline moves and a space when a
// glyph starts well to the right of where the previous one ended.
func pageText(glyphs []pdf.Text) string {
	var b strings.Builder

	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			size := math.Max(prev.FontSize, 1)

			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				b.WriteString("\n")
			case g.X-(prev.X+prev.W) > size/5 && prev.S != " " && g.S != " ":
				b.WriteString(" ")
			}
		}
		b.WriteString(g.S)
	}

	return b.String()
}
