package reader

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

func TestFontStyleDetection(t *testing.T) {
	tests := []struct {
		font       string
		wantBold   bool
		wantItalic bool
	}{
		{"Helvetica", false, false},
		{"Helvetica-Bold", true, false},
		{"Arial-BoldMT", true, false},
		{"Roboto-Black", true, false},
		{"OpenSans-SemiBold", true, false},
		{"Times-Italic", false, true},
		{"Courier-Oblique", false, true},
		{"Georgia-BoldItalic", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := fontIsBold(tt.font); got != tt.wantBold {
			t.Errorf("fontIsBold(%q) = %v, want %v", tt.font, got, tt.wantBold)
		}
		if got := fontIsItalic(tt.font); got != tt.wantItalic {
			t.Errorf("fontIsItalic(%q) = %v, want %v", tt.font, got, tt.wantItalic)
		}
	}
}

func TestPageFragments_CoalescesRuns(t *testing.T) {
	// Three word runs on one baseline followed by a body line below.
	content := pdflib.Content{Text: []pdflib.Text{
		{Font: "Helvetica-Bold", FontSize: 16, X: 72, Y: 700, W: 10, S: "1."},
		{Font: "Helvetica-Bold", FontSize: 16, X: 86, Y: 700, W: 80, S: "Introduction"},
		{Font: "Helvetica", FontSize: 10, X: 72, Y: 650, W: 200, S: "Body text on the next line."},
	}}

	fragments := pageFragments(content, 3)

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2: %+v", len(fragments), fragments)
	}

	heading := fragments[0]
	if heading.Text != "1. Introduction" {
		t.Errorf("heading text = %q, want %q", heading.Text, "1. Introduction")
	}
	if !heading.Bold || heading.Size != 16 || heading.Page != 3 {
		t.Errorf("heading = %+v, want bold size-16 fragment on page 3", heading)
	}

	body := fragments[1]
	if body.Bold || body.Size != 10 {
		t.Errorf("body = %+v, want plain size-10 fragment", body)
	}
}

// PDF coordinates grow upward; fragments must come out top-down.
func TestPageFragments_FlipsVerticalAxis(t *testing.T) {
	content := pdflib.Content{Text: []pdflib.Text{
		{Font: "Helvetica", FontSize: 12, X: 72, Y: 100, W: 50, S: "bottom"},
		{Font: "Helvetica", FontSize: 12, X: 72, Y: 700, W: 50, S: "top"},
	}}

	fragments := pageFragments(content, 1)

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}
	var top, bottom float64
	for _, f := range fragments {
		switch f.Text {
		case "top":
			top = f.Y
		case "bottom":
			bottom = f.Y
		}
	}
	if top >= bottom {
		t.Errorf("top Y=%g not above bottom Y=%g after flip", top, bottom)
	}
}

func TestPageFragments_Empty(t *testing.T) {
	if got := pageFragments(pdflib.Content{}, 1); len(got) != 0 {
		t.Errorf("got %d fragments for empty content, want 0", len(got))
	}
}

func TestPageFragments_SeparatesWordsByGap(t *testing.T) {
	// Two runs with a visible gap between them; the joined text needs a
	// space even though neither run carries one.
	content := pdflib.Content{Text: []pdflib.Text{
		{Font: "Helvetica", FontSize: 12, X: 72, Y: 700, W: 40, S: "Hello"},
		{Font: "Helvetica", FontSize: 12, X: 120, Y: 700, W: 40, S: "World"},
	}}

	fragments := pageFragments(content, 1)

	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1: %+v", len(fragments), fragments)
	}
	if fragments[0].Text != "Hello World" {
		t.Errorf("text = %q, want %q", fragments[0].Text, "Hello World")
	}
}
