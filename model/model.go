package model

import (
	"fmt"
	"sort"
)

// Level represents the hierarchical level of a heading (H1-H3)
type Level int

const (
	LevelUnknown Level = iota
	Level1             // H1 - Title/chapter
	Level2             // H2 - Major section
	Level3             // H3 - Subsection
)

// MaxLevel is the deepest heading level the engine produces.
const MaxLevel = Level3

// String returns a string representation of the heading level
func (l Level) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return "unknown"
	}
}

// Depth returns the nesting depth of the level (H1=1, H2=2, H3=3),
// or 0 for an unknown level.
func (l Level) Depth() int {
	if l >= Level1 && l <= Level3 {
		return int(l)
	}
	return 0
}

// LevelFromDepth returns the level for a nesting depth, capping depths
// greater than 3 at H3. A depth below 1 yields LevelUnknown.
func LevelFromDepth(depth int) Level {
	switch {
	case depth < 1:
		return LevelUnknown
	case depth > int(MaxLevel):
		return MaxLevel
	default:
		return Level(depth)
	}
}

// MarshalJSON encodes the level as its string form ("H1", "H2", "H3").
func (l Level) MarshalJSON() ([]byte, error) {
	if l < Level1 || l > Level3 {
		return nil, fmt.Errorf("cannot marshal unknown heading level %d", int(l))
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a level from its string form.
func (l *Level) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = Level1
	case `"H2"`:
		*l = Level2
	case `"H3"`:
		*l = Level3
	default:
		return fmt.Errorf("unknown heading level %s", data)
	}
	return nil
}

// TextFragment represents a positioned, styled run of text extracted from
// one page of a document.
type TextFragment struct {
	// Text is the fragment's Unicode text content
	Text string

	// Size is the font size in document units
	Size float64

	// Bold indicates a bold font face
	Bold bool

	// Italic indicates an italic or oblique font face
	Italic bool

	// Page is the 1-based page number the fragment appears on
	Page int

	// Y is the vertical offset from the top of the page; smaller values
	// appear earlier in reading order
	Y float64
}

// OutlineEntry is a single entry of the final document outline.
type OutlineEntry struct {
	Text  string `json:"text"`
	Level Level  `json:"level"`
	Page  int    `json:"page"`
}

// SortFragments orders fragments by page ascending, then by vertical
// position within the page. The sort is stable so fragments sharing a
// position keep their original relative order.
func SortFragments(fragments []TextFragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		if fragments[i].Page != fragments[j].Page {
			return fragments[i].Page < fragments[j].Page
		}
		return fragments[i].Y < fragments[j].Y
	})
}
