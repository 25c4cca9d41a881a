package model

import (
	"encoding/json"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Level1, "H1"},
		{Level2, "H2"},
		{Level3, "H3"},
		{LevelUnknown, "unknown"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelDepth(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Level1, 1},
		{Level2, 2},
		{Level3, 3},
		{LevelUnknown, 0},
		{Level(9), 0},
	}

	for _, tt := range tests {
		if got := tt.level.Depth(); got != tt.want {
			t.Errorf("Level(%d).Depth() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromDepth(t *testing.T) {
	tests := []struct {
		depth int
		want  Level
	}{
		{1, Level1},
		{2, Level2},
		{3, Level3},
		{4, Level3}, // capped
		{7, Level3},
		{0, LevelUnknown},
		{-1, LevelUnknown},
	}

	for _, tt := range tests {
		if got := LevelFromDepth(tt.depth); got != tt.want {
			t.Errorf("LevelFromDepth(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestOutlineEntryJSON(t *testing.T) {
	entry := OutlineEntry{Text: "1. Introduction", Level: Level1, Page: 1}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"text":"1. Introduction","level":"H1","page":1}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded OutlineEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded != entry {
		t.Errorf("round trip = %+v, want %+v", decoded, entry)
	}
}

func TestLevelMarshalUnknown(t *testing.T) {
	if _, err := json.Marshal(LevelUnknown); err == nil {
		t.Error("expected error marshaling unknown level, got nil")
	}
}

func TestLevelUnmarshalInvalid(t *testing.T) {
	var l Level
	if err := json.Unmarshal([]byte(`"H7"`), &l); err == nil {
		t.Error("expected error unmarshaling H7, got nil")
	}
}

func TestSortFragments(t *testing.T) {
	fragments := []TextFragment{
		{Text: "c", Page: 2, Y: 10},
		{Text: "b", Page: 1, Y: 300},
		{Text: "a", Page: 1, Y: 50},
		{Text: "d", Page: 2, Y: 10}, // same position as "c", order preserved
	}

	SortFragments(fragments)

	var got string
	for _, f := range fragments {
		got += f.Text
	}
	if got != "abcd" {
		t.Errorf("sorted order = %q, want %q", got, "abcd")
	}
}
