// Package sites holds one shape matcher per patch site. A matcher
// confirms a known structural shape around a stable anchor literal,
// derives whether the site already has the desired shape, and
// synthesizes the byte-range edits that reach it. Every decision is a
// pure function of the current source text: running a matcher against
// its own output reports the site as patched and yields no edits.
package sites

import (
	"errors"
	"fmt"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
)

// ErrAmbiguous aborts a run when more than one equally valid unpatched
// candidate exists for one site. Guessing risks corrupting unrelated
// code, so the matcher fails closed instead.
var ErrAmbiguous = errors.New("ambiguous match")

// Status is the per-site detection outcome.
type Status string

// Per-site outcome labels.
const (
	// StatusDetected: the anchor and shape were recognized and the site
	// is not yet in the desired shape.
	StatusDetected Status = "detected"
	// StatusPatched: the site's current shape already equals the desired
	// post-edit shape.
	StatusPatched Status = "already-patched"
	// StatusNotFound: the anchor is absent; the site does not apply to
	// this build. Not fatal.
	StatusNotFound Status = "not-found"
	// StatusMismatch: the anchor is present but no supported shape
	// surrounds it, signaling a possibly incompatible build. Non-fatal
	// but surfaced.
	StatusMismatch Status = "shape-mismatch"
	// StatusSkipped: the run's goal does not exercise this site.
	StatusSkipped Status = "skipped"
)

// Goal is the requested end state. Empty color fields leave the
// corresponding sites untouched; colors are validated hex literals by
// the time they reach this package.
type Goal struct {
	ForceVisible bool
	HeaderColor  string
	ContentColor string
}

// Edit replaces the [Start, End) byte range of the original text with
// Replacement. Start == End inserts. Edits produced by one scan pass are
// pairwise non-overlapping.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Result is one site's scan outcome.
type Result struct {
	Site   string
	Status Status
	Detail string
	Edits  []Edit
}

// Site recognizes and edits one target location.
type Site interface {
	// Name identifies the site in reports.
	Name() string
	// InScope reports whether the goal exercises this site.
	InScope(goal Goal) bool
	// Scan locates the site in the tree, classifies it, and returns the
	// edits needed to reach the desired shape. Scan returns an error
	// only for fatal conditions (ErrAmbiguous).
	Scan(tree *jsast.Tree, goal Goal) (Result, error)
}

// All returns every matcher in scan order.
func All() []Site {
	return []Site{
		&VisibilitySite{},
		&HeaderColorSite{},
		&ContentColorSite{},
	}
}

// candidate is one raw match produced by a matcher before
// disambiguation. key identifies the matched construct so duplicate
// anchors resolving to the same node collapse into one candidate.
type candidate struct {
	key     jsast.NodeID
	patched bool
	edits   []Edit
}

// disambiguate resolves multiple structurally valid candidates. When all
// are already patched they are equivalent end states and any one is
// reported. When exactly one is unpatched it is selected; the others are
// presumed leftover partial patches. More than one unpatched candidate
// is unresolvable and fails closed.
func disambiguate(siteName string, cands []candidate) (candidate, error) {
	unpatched := make([]candidate, 0, len(cands))

	for _, c := range cands {
		if !c.patched {
			unpatched = append(unpatched, c)
		}
	}

	switch len(unpatched) {
	case 0:
		return cands[0], nil
	case 1:
		return unpatched[0], nil
	default:
		return candidate{}, fmt.Errorf("%w: site %s has %d simultaneously unpatched candidates",
			ErrAmbiguous, siteName, len(unpatched))
	}
}

// dedupe collapses candidates sharing the same key, keeping first wins.
func dedupe(cands []candidate) []candidate {
	seen := make(map[jsast.NodeID]struct{}, len(cands))
	out := cands[:0]

	for _, c := range cands {
		if _, dup := seen[c.key]; dup {
			continue
		}

		seen[c.key] = struct{}{}

		out = append(out, c)
	}

	return out
}
