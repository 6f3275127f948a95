// Package patch turns site matches into a single non-overlapping splice
// over the original text, and re-proves the result through the same
// detection logic before anything may be persisted.
package patch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// Sentinel errors for the edit pass.
var (
	// ErrOverlappingEdits indicates a matcher defect: edits from one
	// pass must be pairwise non-overlapping, so an overlap aborts the
	// run instead of merging silently.
	ErrOverlappingEdits = errors.New("overlapping edits")
	// ErrEditOutOfRange indicates an edit outside the source text.
	ErrEditOutOfRange = errors.New("edit out of range")
)

// Splice applies the edits to src in one pass and returns the new text.
// Output equals input outside the replaced ranges: the result is exactly
// the untouched spans concatenated with the replacements, in order.
func Splice(src []byte, edits []sites.Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	ordered := make([]sites.Edit, len(edits))
	copy(ordered, edits)

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}

		return ordered[i].End < ordered[j].End
	})

	grown := 0

	for i, e := range ordered {
		if e.Start < 0 || e.End < e.Start || e.End > len(src) {
			return nil, fmt.Errorf("%w: [%d, %d) against %d bytes", ErrEditOutOfRange, e.Start, e.End, len(src))
		}

		if i > 0 {
			prev := ordered[i-1]
			// Equal starts cover the ambiguous two-insertions-at-one-
			// point case, where apply order would change the output.
			if e.Start < prev.End || e.Start == prev.Start {
				return nil, fmt.Errorf("%w: [%d, %d) and [%d, %d)",
					ErrOverlappingEdits, prev.Start, prev.End, e.Start, e.End)
			}
		}

		grown += len(e.Replacement) - (e.End - e.Start)
	}

	out := make([]byte, 0, len(src)+grown)
	at := 0

	for _, e := range ordered {
		out = append(out, src[at:e.Start]...)
		out = append(out, e.Replacement...)
		at = e.End
	}

	out = append(out, src[at:]...)

	return out, nil
}
