// Package reader provides document readers that turn source files into
// the positioned, styled text fragments consumed by the outline engine.
//
// Each reader implements [FragmentSource] and is responsible for decoding
// its format, preserving natural reading order within a page, and
// supplying font sizes in consistent units across the whole document.
package reader

import (
	"fmt"
	"os"

	"github.com/docsignal/outline/format"
	"github.com/docsignal/outline/model"
)

// FragmentSource yields the ordered fragment sequence for one document.
type FragmentSource interface {
	// Fragments returns all text fragments in reading order: page
	// ascending, then top-to-bottom within each page.
	Fragments() ([]model.TextFragment, error)
}

// Open returns a fragment source for the named file, detecting the format
// from the file extension and, when that is inconclusive, from the
// content's leading bytes.
func Open(filename string) (FragmentSource, error) {
	f := format.Detect(filename)
	if f == format.Unknown {
		f = sniff(filename)
	}

	switch f {
	case format.PDF:
		return NewPDFSource(filename), nil
	case format.HTML:
		return NewHTMLSource(filename), nil
	default:
		return nil, fmt.Errorf("unsupported document format: %s", filename)
	}
}

// sniff reads the leading bytes of a file for magic-based detection.
func sniff(filename string) format.Format {
	f, err := os.Open(filename)
	if err != nil {
		return format.Unknown
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return format.Unknown
	}
	return format.DetectFromMagic(buf[:n])
}
