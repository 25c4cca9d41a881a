// Package outline provides a fluent API for extracting heading outlines
// from documents.
//
// Basic usage:
//
//	entries, err := outline.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	cfg := layout.DefaultConfig()
//	cfg.MaxHeadingChars = 80
//	data, err := outline.Open("report.pdf").WithConfig(cfg).JSON()
//
// For advanced use cases, the lower-level layout and reader packages are
// also available.
package outline

import (
	"encoding/json"
	"fmt"

	"github.com/docsignal/outline/layout"
	"github.com/docsignal/outline/model"
	"github.com/docsignal/outline/reader"
)

// Extractor provides a fluent interface for extracting an outline from a
// document. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	filename  string
	fragments []model.TextFragment
	haveFrags bool

	config layout.Config

	// Accumulated error (fail-fast)
	err error
}

// Open prepares an Extractor for the named document. The format is
// detected when a terminal operation runs; no I/O happens here.
//
// Example:
//
//	entries, err := outline.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		config:   layout.DefaultConfig(),
	}
}

// FromFragments creates an Extractor over an already-extracted fragment
// sequence. This is useful when fragments come from a custom parsing
// layer rather than one of the built-in readers.
func FromFragments(fragments []model.TextFragment) *Extractor {
	return &Extractor{
		fragments: fragments,
		haveFrags: true,
		config:    layout.DefaultConfig(),
	}
}

// clone creates a copy of the Extractor so chain methods never mutate the
// receiver.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		fragments: e.fragments,
		haveFrags: e.haveFrags,
		config:    e.config,
		err:       e.err,
	}
}

// WithConfig returns an Extractor using a custom classifier configuration.
func (e *Extractor) WithConfig(config layout.Config) *Extractor {
	n := e.clone()
	if err := config.Validate(); err != nil {
		n.err = fmt.Errorf("invalid config: %w", err)
		return n
	}
	n.config = config
	return n
}

// load resolves the fragment sequence, reading the document if needed.
func (e *Extractor) load() ([]model.TextFragment, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.haveFrags {
		return e.fragments, nil
	}
	src, err := reader.Open(e.filename)
	if err != nil {
		return nil, err
	}
	return src.Fragments()
}

// Outline extracts the document's heading outline. The result is ordered
// by page, then by on-page position, and is empty (never nil) for a
// document without headings.
func (e *Extractor) Outline() ([]model.OutlineEntry, error) {
	fragments, err := e.load()
	if err != nil {
		return nil, err
	}
	return layout.NewAnalyzerWithConfig(e.config).Analyze(fragments), nil
}

// Title extracts the document title from the first page, falling back to
// layout.DefaultTitle when no fragment qualifies.
func (e *Extractor) Title() (string, error) {
	fragments, err := e.load()
	if err != nil {
		return "", err
	}
	return layout.ExtractTitle(fragments), nil
}

// JSON extracts the outline and encodes it as the final JSON artifact: an
// array of objects with exactly the fields text, level, and page.
func (e *Extractor) JSON() ([]byte, error) {
	entries, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	entries := outline.Must(outline.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
