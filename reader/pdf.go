package reader

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docsignal/outline/model"
)

// Coalescing thresholds for grouping glyph runs into fragments. Runs on
// the same baseline with the same font and size belong to one fragment; a
// horizontal gap wider than wordGapRatio of the font size separates words.
const (
	baselineTolerance = 0.5
	wordGapRatio      = 0.2
)

// PDFSource reads text fragments from a PDF file using the ledongthuc/pdf
// content extractor. Style flags are inferred from font names, and
// vertical positions are converted from PDF bottom-up coordinates to
// top-down reading order offsets.
type PDFSource struct {
	filename string
}

// NewPDFSource creates a fragment source for a PDF file.
func NewPDFSource(filename string) *PDFSource {
	return &PDFSource{filename: filename}
}

// Fragments extracts all text fragments, one pass per page, in reading
// order. Pages whose content cannot be decoded are skipped rather than
// failing the whole document.
func (s *PDFSource) Fragments() ([]model.TextFragment, error) {
	f, r, err := pdflib.Open(s.filename)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", s.filename, err)
	}
	defer f.Close()

	var fragments []model.TextFragment
	numPages := r.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, pageFragments(page.Content(), pageNum)...)
	}

	model.SortFragments(fragments)
	return fragments, nil
}

// pageFragments coalesces the page's glyph runs into line-level fragments.
func pageFragments(content pdflib.Content, pageNum int) []model.TextFragment {
	texts := content.Text
	if len(texts) == 0 {
		return nil
	}

	// The top of the page in content coordinates, used to flip the
	// bottom-up Y axis into a top-down offset. Using the topmost glyph
	// avoids depending on inherited MediaBox attributes.
	pageTop := 0.0
	for _, t := range texts {
		if top := t.Y + t.FontSize; top > pageTop {
			pageTop = top
		}
	}

	var fragments []model.TextFragment
	var sb strings.Builder
	var cur pdflib.Text
	var lastEnd float64

	flush := func() {
		text := strings.TrimSpace(sb.String())
		sb.Reset()
		if text == "" {
			return
		}
		fragments = append(fragments, model.TextFragment{
			Text:   text,
			Size:   cur.FontSize,
			Bold:   fontIsBold(cur.Font),
			Italic: fontIsItalic(cur.Font),
			Page:   pageNum,
			Y:      pageTop - cur.Y,
		})
	}

	for i, t := range texts {
		sameRun := i > 0 &&
			t.Font == cur.Font &&
			t.FontSize == cur.FontSize &&
			absFloat(t.Y-cur.Y) <= baselineTolerance

		if !sameRun {
			flush()
			cur = t
			lastEnd = t.X
		}
		if t.X-lastEnd > t.FontSize*wordGapRatio && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	flush()

	return fragments
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// fontIsBold infers a bold face from the font name.
func fontIsBold(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "bold") ||
		strings.Contains(name, "black") ||
		strings.Contains(name, "heavy") ||
		strings.Contains(name, "semibold") ||
		strings.Contains(name, "demibold")
}

// fontIsItalic infers an italic face from the font name.
func fontIsItalic(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "italic") || strings.Contains(name, "oblique")
}
