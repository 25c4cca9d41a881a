package layout

import (
	"regexp"

	"github.com/docsignal/outline/internal/textnorm"
	"github.com/docsignal/outline/model"
)

// headingPattern pairs a structural heading convention with the nesting
// depth it implies.
type headingPattern struct {
	re    *regexp.Regexp
	depth int
}

// defaultPatterns is the ordered pattern table, tried top-down with
// first-match-wins. More specific numbering conventions come first so that
// "1.1.1" is never shadowed by the looser "1." matching its prefix.
var defaultPatterns = []headingPattern{
	// Dotted decimal numbering; depth follows the number of groups.
	{regexp.MustCompile(`^\d+(\.\d+){2,}\.?\s+\S`), 3},
	{regexp.MustCompile(`^\d+\.\d+\.?\s+\S`), 2},
	{regexp.MustCompile(`^\d+\.\s+\S`), 1},

	// Chapter/part markers across scripts.
	{regexp.MustCompile(`(?i)^(chapter|kapitel|chapitre|capítulo|глава|الفصل)\s+\d+`), 1},
	{regexp.MustCompile(`^第\s*[0-9一二三四五六七八九十百]+\s*[章部]`), 1},
	{regexp.MustCompile(`(?i)^(part|teil|partie|parte|часть|الجزء)\s+[0-9IVXLC]+`), 1},

	// Section markers imply one level below a chapter.
	{regexp.MustCompile(`(?i)^(section|abschnitt|sección|раздел|القسم)\s+\d+`), 2},
	{regexp.MustCompile(`^第\s*[0-9一二三四五六七八九十百]+\s*節`), 2},
	{regexp.MustCompile(`^§\s*\d+`), 2},

	// Appendix markers.
	{regexp.MustCompile(`(?i)^(appendix|anhang|annexe|apéndice)\s+[A-Z0-9]`), 1},

	// Roman numeral prefixes, before single letters so "V." is a numeral.
	{regexp.MustCompile(`^[IVXLCDM]+\.\s+\S`), 1},

	// Single letter prefixes ("A. Overview").
	{regexp.MustCompile(`^[A-Z]\.\s+\S`), 2},

	// Bare number followed by a capitalized word ("1 Introduction").
	{regexp.MustCompile(`^\d+\s+\p{Lu}`), 1},
}

// Matcher decides, from text alone, whether a fragment matches a
// structural heading convention and which level the convention implies.
// The zero value is not usable; create one with NewMatcher.
type Matcher struct {
	patterns []headingPattern
}

// NewMatcher creates a matcher with the default multilingual pattern table.
func NewMatcher() *Matcher {
	return &Matcher{patterns: defaultPatterns}
}

// Match reports whether the text matches a heading convention and the
// level implied by it. The level reflects numbering depth only, capped at
// H3; font signals are not consulted. Text is Unicode-normalized and
// trimmed before matching, so equivalent encodings match identically.
func (m *Matcher) Match(text string) (model.Level, bool) {
	t := textnorm.ForMatch(text)
	if t == "" {
		return model.LevelUnknown, false
	}
	for _, p := range m.patterns {
		if p.re.MatchString(t) {
			return model.LevelFromDepth(p.depth), true
		}
	}
	return model.LevelUnknown, false
}
