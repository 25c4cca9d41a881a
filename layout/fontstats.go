package layout

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/docsignal/outline/model"
)

// sizeBucket is the rounding granularity for font sizes. Sizes within the
// same 0.5pt bucket are treated as the same size.
const sizeBucket = 0.5

// synthesisScale is the fixed ratio used to synthesize missing heading
// sizes when a document uses fewer than three distinct sizes above body
// text.
const synthesisScale = 1.2

// candidateSize is one heading size slot in a FontProfile. Synthesized
// slots were not observed in the document and carry a weaker signal.
type candidateSize struct {
	size      float64
	synthetic bool
}

// FontProfile holds the document-wide font size distribution and the
// derived thresholds separating body text from heading levels. It is built
// once per document and read-only afterward.
type FontProfile struct {
	// BodySize is the dominant font size of the document, by weighted
	// frequency. Zero for an empty document.
	BodySize float64

	candidates []candidateSize
}

// NewFontProfile analyzes the font size distribution of a document's
// fragments. Frequencies are weighted by character count rather than
// fragment count so that short bold labels do not skew the body size
// estimate. An empty fragment sequence yields a valid empty profile.
func NewFontProfile(fragments []model.TextFragment) FontProfile {
	weights := make(map[int]int)
	for _, frag := range fragments {
		if frag.Size <= 0 {
			continue
		}
		n := utf8.RuneCountInString(frag.Text)
		if n == 0 {
			continue
		}
		weights[bucketOf(frag.Size)] += n
	}
	if len(weights) == 0 {
		return FontProfile{}
	}

	bodyBucket := 0
	maxWeight := 0
	for bucket, weight := range weights {
		if weight > maxWeight || (weight == maxWeight && bucket < bodyBucket) {
			maxWeight = weight
			bodyBucket = bucket
		}
	}

	var larger []int
	for bucket := range weights {
		if bucket > bodyBucket {
			larger = append(larger, bucket)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(larger)))

	profile := FontProfile{BodySize: sizeOf(bodyBucket)}
	for _, bucket := range larger {
		if len(profile.candidates) == int(model.MaxLevel) {
			break
		}
		profile.candidates = append(profile.candidates, candidateSize{size: sizeOf(bucket)})
	}

	// Synthesize missing levels by scaling down from the smallest observed
	// heading size, stopping once a synthesized size would no longer be
	// distinguishable from body text. A document with no size larger than
	// body keeps an empty candidate set.
	for len(profile.candidates) > 0 && len(profile.candidates) < int(model.MaxLevel) {
		next := profile.candidates[len(profile.candidates)-1].size / synthesisScale
		if bucketOf(next) <= bodyBucket {
			break
		}
		profile.candidates = append(profile.candidates, candidateSize{size: next, synthetic: true})
	}

	return profile
}

// Empty reports whether the profile has no candidate heading sizes, which
// happens for documents with no font size variation. Classification then
// falls back entirely to pattern signals.
func (p FontProfile) Empty() bool {
	return len(p.candidates) == 0
}

// CandidateSizes returns the candidate heading sizes in descending order.
// The largest size maps to H1.
func (p FontProfile) CandidateSizes() []float64 {
	sizes := make([]float64, len(p.candidates))
	for i, c := range p.candidates {
		sizes[i] = c.size
	}
	return sizes
}

// LevelFor maps a font size onto a heading level by size rank. The second
// result reports whether the matched slot was synthesized rather than
// observed; callers should then require a secondary signal such as bold.
func (p FontProfile) LevelFor(size float64) (level model.Level, synthetic bool, ok bool) {
	bucket := bucketOf(size)
	for i, c := range p.candidates {
		if bucketOf(c.size) == bucket {
			return model.LevelFromDepth(i + 1), c.synthetic, true
		}
	}
	return model.LevelUnknown, false, false
}

func bucketOf(size float64) int {
	return int(math.Round(size / sizeBucket))
}

func sizeOf(bucket int) float64 {
	return float64(bucket) * sizeBucket
}
