// Package textnorm provides the Unicode normalization used throughout the
// outline engine. Pattern matching and deduplication both depend on
// equivalent encodings of the same glyphs comparing equal, so every piece
// of fragment text passes through here before being inspected.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// matchTransform composes combining marks and folds width variants so that
// fullwidth/halfwidth and precomposed/decomposed encodings match the same
// patterns.
var matchTransform = transform.Chain(norm.NFKC, width.Fold)

// keyTransform additionally strips diacritics: decompose, drop nonspacing
// marks, recompose.
var keyTransform = transform.Chain(
	norm.NFKC,
	width.Fold,
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

var caseFolder = cases.Fold()

// ForMatch normalizes text for pattern matching: NFKC composition, width
// folding, and surrounding whitespace removal. Case and diacritics are
// preserved since patterns may be case-sensitive.
func ForMatch(s string) string {
	out, _, err := transform.String(matchTransform, s)
	if err != nil {
		// Malformed input falls back to the raw text; matching is
		// best-effort and must never fail.
		out = s
	}
	return strings.TrimSpace(out)
}

// Key produces the normalized deduplication key for a piece of heading
// text: case-folded, whitespace-collapsed, width-folded, and with
// diacritics removed. Two fragments with the same Key are treated as the
// same heading by the refiner.
func Key(s string) string {
	out, _, err := transform.String(keyTransform, s)
	if err != nil {
		out = s
	}
	out = caseFolder.String(out)
	return strings.Join(strings.Fields(out), " ")
}
