// Package layout implements the heading classification and hierarchy
// assembly engine. It turns a flat sequence of styled text fragments into
// an ordered outline of H1-H3 headings with page numbers.
//
// Analysis runs in four stages, each depending on the complete output of
// the previous one:
//
//  1. Font statistics: a document-wide [FontProfile] separating body text
//     from candidate heading sizes.
//  2. Pattern matching: structural heading conventions (numbered sections,
//     chapter markers) detected from text alone by [Matcher].
//  3. Classification: per-fragment heading decisions combining both
//     signals, performed by [Classifier].
//  4. Refinement: document-wide deduplication and level normalization by
//     [Refiner], producing the final entries.
//
// The [Analyzer] type orchestrates all four stages:
//
//	entries := layout.NewAnalyzer().Analyze(fragments)
//
// All stages are deterministic, total functions: malformed or empty input
// produces an empty outline, never an error.
package layout
