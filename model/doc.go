// Package model provides the data types shared by the outline extraction
// pipeline.
//
// This package defines the user-facing structures that flow through the
// engine: [TextFragment] values produced by a document reader, and
// [OutlineEntry] values emitted as the final artifact. All analysis
// operations consume and produce these types, making them the primary API
// for working with extracted outlines.
//
// # Fragments
//
// A [TextFragment] is a positioned, styled run of text as produced by the
// parsing layer:
//
//	frag := model.TextFragment{
//	    Text: "1. Introduction",
//	    Size: 16,
//	    Bold: true,
//	    Page: 1,
//	    Y:    72,
//	}
//
// Fragments are immutable values; the engine never modifies them.
//
// # Outline Entries
//
// An [OutlineEntry] carries only text, level, and page, and marshals to the
// JSON shape {"text": ..., "level": "H1", "page": 1}.
package model
