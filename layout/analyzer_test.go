package layout

import (
	"strings"
	"testing"

	"github.com/docsignal/outline/model"
)

// The canonical three-fragment document: numbered H1, body text, and a
// numbered H2 on the next page.
func scenarioFragments() []model.TextFragment {
	return []model.TextFragment{
		makeFragment("1. Introduction", 16, true, 1, 20),
		makeFragment(bodyText(), 10, false, 1, 60),
		makeFragment("1.1 Background", 14, true, 2, 20),
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	entries := NewAnalyzer().Analyze(scenarioFragments())

	want := []model.OutlineEntry{
		{Text: "1. Introduction", Level: model.Level1, Page: 1},
		{Text: "1.1 Background", Level: model.Level2, Page: 2},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestAnalyze_Empty(t *testing.T) {
	entries := NewAnalyzer().Analyze(nil)

	if entries == nil {
		t.Fatal("Analyze(nil) returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

// A document with no font size variation still gets pattern-based
// headings.
func TestAnalyze_DegenerateFont(t *testing.T) {
	fragments := []model.TextFragment{
		makeFragment("Chapter 1", 12, false, 1, 10),
		makeFragment(bodyText(), 12, false, 1, 40),
		makeFragment("Chapter 2", 12, false, 2, 10),
	}

	entries := NewAnalyzer().Analyze(fragments)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	for i, e := range entries {
		if e.Level != model.Level1 {
			t.Errorf("entries[%d].Level = %v, want %v", i, e.Level, model.Level1)
		}
	}
}

func TestAnalyze_InputNotModified(t *testing.T) {
	fragments := []model.TextFragment{
		makeFragment("Later", 16, true, 2, 10),
		makeFragment("Earlier", 16, true, 1, 10),
	}

	NewAnalyzer().Analyze(fragments)

	if fragments[0].Text != "Later" {
		t.Error("Analyze reordered the caller's fragment slice")
	}
}

// Every adjacent pair in the output nests by at most one step, and no
// two adjacent entries on a page share a text key.
func TestAnalyze_OutputInvariants(t *testing.T) {
	fragments := []model.TextFragment{
		makeFragment("Annual Report", 24, true, 1, 10),
		makeFragment("Company Confidential", 11.8, true, 1, 5), // running header
		makeFragment(bodyText(), 10, false, 1, 100),
		makeFragment("1.1.1 Deep Detail", 10, false, 1, 150), // jump after H1
		makeFragment("Company Confidential", 11.8, true, 2, 5),
		makeFragment("Financials", 18, true, 2, 30),
		makeFragment("Financials", 18, true, 2, 31), // split run
		makeFragment(bodyText(), 10, false, 2, 100),
		makeFragment("Outlook", 14, true, 3, 30),
	}

	entries := NewAnalyzer().Analyze(fragments)

	if len(entries) == 0 {
		t.Fatal("expected a non-empty outline")
	}

	prevDepth := 0
	for i, e := range entries {
		depth := e.Level.Depth()
		if depth == 0 {
			t.Fatalf("entries[%d] has invalid level %v", i, e.Level)
		}
		if prevDepth > 0 && depth > prevDepth+1 {
			t.Errorf("nesting jump at entries[%d]: depth %d after %d", i, depth, prevDepth)
		}
		prevDepth = depth

		if i > 0 && entries[i-1].Page == e.Page && strings.EqualFold(entries[i-1].Text, e.Text) {
			t.Errorf("adjacent duplicate at entries[%d]: %q", i, e.Text)
		}
	}

	// The split "Financials" run collapsed to one entry.
	count := 0
	for _, e := range entries {
		if e.Text == "Financials" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("split heading appears %d times, want 1: %+v", count, entries)
	}
}

func TestAnalyze_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHeadingChars = 10

	entries := NewAnalyzerWithConfig(cfg).Analyze(scenarioFragments())

	// Both numbered headings exceed the 10-char cutoff.
	for _, e := range entries {
		if len(e.Text) > cfg.MaxHeadingChars {
			t.Errorf("entry %q exceeds MaxHeadingChars %d", e.Text, cfg.MaxHeadingChars)
		}
	}
}
