package hit

import "sort"

// TopHits is a growable collection of hits with a single sort mode,
// supporting registration, full sort, max-name-width query, and
// random access by rank. Growth is amortized via Go's ordinary slice
// append; there is no hit count limit beyond memory.
type TopHits struct {
	mode SortMode
	hits []*Hit
}

// NewTopHits allocates an empty list sorting under the given mode.
func NewTopHits(mode SortMode) *TopHits {
	return &TopHits{mode: mode}
}

// Register appends a hit. The list is not kept sorted incrementally;
// callers call Sort once registration is complete, matching the
// original's "accumulate then sort at output time" usage.
func (th *TopHits) Register(h *Hit) {
	th.hits = append(th.hits, h)
}

// Len reports the number of registered hits.
func (th *TopHits) Len() int { return len(th.hits) }

// At returns the hit at the given rank (0-indexed, after Sort has been
// called) or ErrRankOutOfRange.
func (th *TopHits) At(rank int) (*Hit, error) {
	if rank < 0 || rank >= len(th.hits) {
		return nil, ErrRankOutOfRange
	}
	return th.hits[rank], nil
}

// MaxNameWidth returns the length of the longest sequence name across
// all registered hits, used by output formatters to pad columns.
func (th *TopHits) MaxNameWidth() int {
	max := 0
	for _, h := range th.hits {
		if len(h.SeqName) > max {
			max = len(h.SeqName)
		}
	}
	return max
}

// Sort orders the list in place by the list's sort mode: SortByEValue
// ranks primarily by E-value ascending, breaking ties at E==0 by score
// descending; SortByScore ranks by score descending alone.
func (th *TopHits) Sort() {
	sort.SliceStable(th.hits, func(i, j int) bool {
		a, b := th.hits[i], th.hits[j]
		switch th.mode {
		case SortByScore:
			return a.Score > b.Score
		default:
			if a.EValue != b.EValue {
				return a.EValue < b.EValue
			}
			return a.Score > b.Score
		}
	})
}
