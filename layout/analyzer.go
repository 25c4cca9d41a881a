package layout

import (
	"github.com/docsignal/outline/model"
)

// Analyzer orchestrates the full outline extraction pipeline: font
// statistics, per-fragment classification, and document-wide refinement.
// An Analyzer is stateless between documents and safe for concurrent use;
// the per-document FontProfile is threaded through as a value.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze extracts the heading outline from a document's fragments. The
// input is not modified. The result is ordered by page, then by vertical
// position, and is never nil: an empty document yields an empty outline.
func (a *Analyzer) Analyze(fragments []model.TextFragment) []model.OutlineEntry {
	ordered := make([]model.TextFragment, len(fragments))
	copy(ordered, fragments)
	model.SortFragments(ordered)

	profile := NewFontProfile(ordered)
	classifier := NewClassifierWithConfig(profile, a.config)

	var candidates []Candidate
	for _, frag := range ordered {
		if cand, ok := classifier.Classify(frag); ok {
			candidates = append(candidates, cand)
		}
	}

	return NewRefiner().Refine(candidates)
}
