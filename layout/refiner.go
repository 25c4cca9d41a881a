package layout

import (
	"sort"
	"strings"

	"github.com/docsignal/outline/model"
)

// Refiner turns the per-fragment heading candidates for a whole document
// into the final outline: deduplicated, ordered, and with a consistent
// level hierarchy. It never fails; malformed or empty input degrades to an
// empty outline.
type Refiner struct{}

// NewRefiner creates a new refiner.
func NewRefiner() *Refiner {
	return &Refiner{}
}

// Refine produces the final ordered outline from heading candidates.
// Candidates are sorted by page and vertical position, collapsed when a
// heading was split into multiple runs, stripped of repeated running
// headers, and level-normalized so nesting never jumps more than one step
// deeper. The result is never nil.
func (r *Refiner) Refine(candidates []Candidate) []model.OutlineEntry {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Fragment.Page != ordered[j].Fragment.Page {
			return ordered[i].Fragment.Page < ordered[j].Fragment.Page
		}
		return ordered[i].Fragment.Y < ordered[j].Fragment.Y
	})

	ordered = collapseAdjacent(ordered)
	ordered = dropRepeats(ordered)

	entries := make([]model.OutlineEntry, 0, len(ordered))
	prevDepth := 0
	for _, cand := range ordered {
		depth := cand.Level.Depth()
		if depth == 0 {
			continue
		}
		if prevDepth == 0 {
			// The first heading anchors the hierarchy at H1.
			depth = 1
		} else if depth > prevDepth+1 {
			// A bare jump deeper than one step has no ancestor to nest
			// under; demote to the deepest valid level.
			depth = prevDepth + 1
		}
		prevDepth = depth

		entries = append(entries, model.OutlineEntry{
			Text:  strings.TrimSpace(cand.Fragment.Text),
			Level: model.LevelFromDepth(depth),
			Page:  cand.Fragment.Page,
		})
	}
	return entries
}

// collapseAdjacent merges consecutive candidates sharing the same
// normalized key and page into one, keeping the first occurrence. This
// guards against a heading split into multiple text runs by the upstream
// parser.
func collapseAdjacent(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return candidates
	}
	out := candidates[:1]
	for _, cand := range candidates[1:] {
		prev := out[len(out)-1]
		if cand.Key != "" && cand.Key == prev.Key && cand.Fragment.Page == prev.Fragment.Page {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// repeatKey identifies a heading for cross-document deduplication.
type repeatKey struct {
	key   string
	level model.Level
}

// dropRepeats removes candidates whose normalized key recurs on a later
// page at the same level. Running headers and footers repeat verbatim
// across pages; a genuine heading is assumed not to.
func dropRepeats(candidates []Candidate) []Candidate {
	firstPage := make(map[repeatKey]int)
	out := candidates[:0]
	for _, cand := range candidates {
		if cand.Key == "" {
			out = append(out, cand)
			continue
		}
		rk := repeatKey{key: cand.Key, level: cand.Level}
		if page, seen := firstPage[rk]; seen && cand.Fragment.Page > page {
			continue
		}
		if _, seen := firstPage[rk]; !seen {
			firstPage[rk] = cand.Fragment.Page
		}
		out = append(out, cand)
	}
	return out
}
