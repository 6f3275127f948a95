package sites

import (
	"fmt"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
)

// firstChildArg is the argument position where rendered children start
// in a UI construction call (after the element type and its props).
const firstChildArg = 2

// HeaderColorSite recolors the panel header: the UI construction call
// whose rendered child is the header anchor literal gains (or updates) a
// color field in its props object.
type HeaderColorSite struct{}

// Name implements Site.
func (s *HeaderColorSite) Name() string { return "header-color" }

// InScope implements Site.
func (s *HeaderColorSite) InScope(goal Goal) bool { return goal.HeaderColor != "" }

// Scan implements Site.
func (s *HeaderColorSite) Scan(tree *jsast.Tree, goal Goal) (Result, error) {
	occurrences := findHeaderAnchor(tree)
	if len(occurrences) == 0 {
		return Result{Site: s.Name(), Status: StatusNotFound, Detail: "header anchor literal absent"}, nil
	}

	var (
		cands      []candidate
		mismatches int
	)

	for _, occ := range occurrences {
		call := enclosingElementCall(tree, occ)
		if call == jsast.NoNode {
			mismatches++

			continue
		}

		edits, patched, ok := colorPropEdits(tree, elementProps(tree, call), goal.HeaderColor)
		if !ok {
			mismatches++

			continue
		}

		cands = append(cands, candidate{key: call, patched: patched, edits: edits})
	}

	cands = dedupe(cands)
	if len(cands) == 0 {
		return Result{
			Site:   s.Name(),
			Status: StatusMismatch,
			Detail: fmt.Sprintf("anchor present but no construction call renders it (%d occurrence(s))", mismatches),
		}, nil
	}

	chosen, err := disambiguate(s.Name(), cands)
	if err != nil {
		return Result{Site: s.Name()}, err
	}

	if chosen.patched {
		return Result{Site: s.Name(), Status: StatusPatched}, nil
	}

	return Result{Site: s.Name(), Status: StatusDetected, Edits: chosen.edits}, nil
}

// enclosingElementCall finds the nearest ancestor UI construction call
// for which the anchor is a rendered child: the anchor must sit inside a
// positional argument at or past firstChildArg, not in the callee or the
// props.
func enclosingElementCall(tree *jsast.Tree, occ jsast.Occurrence) jsast.NodeID {
	for i := len(occ.Chain) - 1; i >= 0; i-- {
		call := occ.Chain[i]
		if tree.Kind(call) != jsast.KindCall || !isCreateElement(tree, call) {
			continue
		}

		// An argument position means the chain descends through the
		// call's arguments node; anything else is the callee.
		if i+1 < len(occ.Chain) && tree.Kind(occ.Chain[i+1]) != jsast.KindArguments {
			continue
		}

		// The chain entry two below the call (or the anchor itself) is
		// the argument holding the anchor.
		holder := occ.Node
		if i+2 < len(occ.Chain) {
			holder = occ.Chain[i+2]
		}

		for argIdx, arg := range tree.CallArguments(call) {
			if arg == holder && argIdx >= firstChildArg {
				return call
			}
		}
	}

	return jsast.NoNode
}
