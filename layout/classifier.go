package layout

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/docsignal/outline/internal/textnorm"
	"github.com/docsignal/outline/model"
)

// Source indicates which signal produced a heading candidate.
type Source int

const (
	// SourceFont means the candidate was classified by font size/style alone.
	SourceFont Source = iota
	// SourcePattern means the candidate was classified by a structural
	// text pattern alone.
	SourcePattern
	// SourceBoth means font and pattern signals agreed the fragment is a
	// heading.
	SourceBoth
)

// String returns a human-readable representation of the source.
func (s Source) String() string {
	switch s {
	case SourceFont:
		return "font"
	case SourcePattern:
		return "pattern"
	case SourceBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Candidate is a fragment annotated with a provisional heading level. It
// is produced by the Classifier and consumed, possibly discarded, by the
// Refiner.
type Candidate struct {
	// Fragment is the underlying text fragment
	Fragment model.TextFragment

	// Level is the provisional heading level
	Level model.Level

	// Source records which signal classified the fragment
	Source Source

	// Key is the normalized text key used for deduplication
	Key string
}

// Config holds the classifier's decision thresholds. All numeric cutoffs
// live here rather than inline in the decision logic.
type Config struct {
	// MaxHeadingChars is the maximum rune length for a heading; longer
	// fragments are never classified as headings even when bold or large.
	// Default: 120
	MaxHeadingChars int

	// MinHeadingChars is the minimum rune length for a heading.
	// Default: 2
	MinHeadingChars int

	// SizeRatioMin is the minimum ratio over body size for a bold
	// fragment to qualify as "notably larger" when its size is not an
	// exact candidate size. Default: 1.15
	SizeRatioMin float64
}

// DefaultConfig returns the default classifier configuration.
func DefaultConfig() Config {
	return Config{
		MaxHeadingChars: 120,
		MinHeadingChars: 2,
		SizeRatioMin:    1.15,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.MaxHeadingChars <= 0 {
		return fmt.Errorf("MaxHeadingChars must be positive, got %d", c.MaxHeadingChars)
	}
	if c.MinHeadingChars < 1 || c.MinHeadingChars > c.MaxHeadingChars {
		return fmt.Errorf("MinHeadingChars must be in [1, MaxHeadingChars], got %d", c.MinHeadingChars)
	}
	if c.SizeRatioMin <= 1.0 {
		return fmt.Errorf("SizeRatioMin must be greater than 1.0, got %g", c.SizeRatioMin)
	}
	return nil
}

// stopPatterns reject fragments that commonly masquerade as headings:
// page numbers, copyright lines, URLs, e-mail addresses, timestamps.
var stopPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`(?i)^page\s*\d+`),
	regexp.MustCompile(`^\d+\s*/\s*\d+$`),
	regexp.MustCompile(`^©`),
	regexp.MustCompile(`(?i)^(www\.|https?://)`),
	regexp.MustCompile(`^\S+@\S+\.\S+$`),
	regexp.MustCompile(`^\d{1,2}:\d{2}`),
}

// Classifier decides, per fragment and independent of neighbors, whether
// a fragment is a heading and which provisional level it gets.
type Classifier struct {
	config  Config
	matcher *Matcher
	profile FontProfile
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier(profile FontProfile) *Classifier {
	return NewClassifierWithConfig(profile, DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(profile FontProfile, config Config) *Classifier {
	return &Classifier{
		config:  config,
		matcher: NewMatcher(),
		profile: profile,
	}
}

// Classify evaluates one fragment. It returns the heading candidate and
// true when the fragment is a heading, or a zero candidate and false
// otherwise.
//
// Decision order: a structural pattern match wins regardless of font; then
// an exact candidate-size match classifies by size rank; then a bold
// fragment notably larger than body text becomes an H3. Everything else is
// body text.
func (c *Classifier) Classify(frag model.TextFragment) (Candidate, bool) {
	text := strings.TrimSpace(frag.Text)
	length := utf8.RuneCountInString(text)
	if length < c.config.MinHeadingChars || length > c.config.MaxHeadingChars {
		return Candidate{}, false
	}
	if isStopText(text) {
		return Candidate{}, false
	}

	patternLevel, patternOK := c.matcher.Match(text)

	fontLevel, synthetic, fontOK := c.profile.LevelFor(frag.Size)
	if fontOK && synthetic && !frag.Bold {
		// A synthesized size slot was never observed in the document, so
		// it needs bold as a secondary signal.
		fontOK = false
	}

	switch {
	case patternOK:
		source := SourcePattern
		if fontOK {
			source = SourceBoth
		}
		return c.candidate(frag, patternLevel, source), true

	case fontOK:
		return c.candidate(frag, fontLevel, SourceFont), true

	case frag.Bold && c.profile.BodySize > 0 && frag.Size >= c.profile.BodySize*c.config.SizeRatioMin:
		// Not an exact candidate size, but bold and notably larger than
		// body text. Guards against rounding noise in size extraction.
		return c.candidate(frag, model.MaxLevel, SourceFont), true
	}

	return Candidate{}, false
}

func (c *Classifier) candidate(frag model.TextFragment, level model.Level, source Source) Candidate {
	return Candidate{
		Fragment: frag,
		Level:    level,
		Source:   source,
		Key:      textnorm.Key(frag.Text),
	}
}

func isStopText(text string) bool {
	t := textnorm.ForMatch(text)
	for _, p := range stopPatterns {
		if p.MatchString(t) {
			return true
		}
	}
	return false
}
