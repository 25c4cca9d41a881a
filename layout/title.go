package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/docsignal/outline/model"
)

// Title extraction heuristics. The title is the best-scoring large
// fragment near the top of the first page.
const (
	titleMinChars = 10
	titleMaxChars = 150
	titleMinSize  = 14.0

	// titleRegionY bounds the vertical band considered for titles;
	// titleTopY marks the upper part of that band, which scores higher.
	titleRegionY = 200.0
	titleTopY    = 100.0

	titleBoldBonus = 5.0
	titleTopBonus  = 3.0
)

// DefaultTitle is returned when no fragment qualifies as a title.
const DefaultTitle = "Untitled"

// ExtractTitle picks the document title from the first page's fragments:
// the largest fragment near the top of the page, with bonuses for bold
// style and proximity to the top edge. Numbered headings and boilerplate
// (page numbers, URLs, copyright lines) are excluded. Returns DefaultTitle
// when nothing qualifies.
func ExtractTitle(fragments []model.TextFragment) string {
	matcher := NewMatcher()

	best := ""
	bestScore := 0.0
	for _, frag := range fragments {
		if frag.Page != 1 || frag.Y > titleRegionY {
			continue
		}
		text := strings.TrimSpace(frag.Text)
		length := utf8.RuneCountInString(text)
		if length <= titleMinChars || length >= titleMaxChars {
			continue
		}
		if frag.Size < titleMinSize || isStopText(text) {
			continue
		}
		if _, numbered := matcher.Match(text); numbered {
			continue
		}

		score := frag.Size
		if frag.Bold {
			score += titleBoldBonus
		}
		if frag.Y < titleTopY {
			score += titleTopBonus
		}
		if score > bestScore {
			bestScore = score
			best = text
		}
	}

	if best == "" {
		return DefaultTitle
	}
	return best
}
