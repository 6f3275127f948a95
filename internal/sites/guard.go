package sites

import (
	"fmt"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
)

// VisibilitySite forces the collapsed panel to always render. The guard
// that hides it tests the negation of a logical OR of two free
// identifiers (expand-toggle state and verbose mode); the patched form
// negates a constant truthy value instead, so the hide branch can never
// be taken.
type VisibilitySite struct{}

// Name implements Site.
func (s *VisibilitySite) Name() string { return "visibility" }

// InScope implements Site. Forcing visibility is the tool's core
// capability and is exercised on every run.
func (s *VisibilitySite) InScope(goal Goal) bool { return goal.ForceVisible }

// Scan implements Site.
func (s *VisibilitySite) Scan(tree *jsast.Tree, _ Goal) (Result, error) {
	occurrences := findHeaderAnchor(tree)
	if len(occurrences) == 0 {
		return Result{Site: s.Name(), Status: StatusNotFound, Detail: "header anchor literal absent"}, nil
	}

	var (
		cands      []candidate
		mismatches int
	)

	for _, occ := range occurrences {
		guard := findGuard(tree, occ)
		if guard == jsast.NoNode {
			mismatches++

			continue
		}

		test := tree.ConditionalTest(guard)

		orExpr, patched, ok := classifyGuardTest(tree, test)
		if !ok {
			mismatches++

			continue
		}

		c := candidate{key: guard, patched: patched}
		if !patched {
			start, end := tree.Span(orExpr)
			c.edits = []Edit{{Start: start, End: end, Replacement: "!0"}}
		}

		cands = append(cands, c)
	}

	cands = dedupe(cands)
	if len(cands) == 0 {
		return Result{
			Site:   s.Name(),
			Status: StatusMismatch,
			Detail: fmt.Sprintf("anchor present but no recognizable guard near %d occurrence(s)", mismatches),
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

// findHeaderAnchor tries each known header copy variant in order and
// returns the occurrences of the first variant present in the build.
func findHeaderAnchor(tree *jsast.Tree) []jsast.Occurrence {
	for _, anchor := range headerAnchors {
		occurrences := tree.FindLiteral(anchor)
		if len(occurrences) > 0 {
			return occurrences
		}
	}

	return nil
}

// findGuard locates the conditional guarding the anchor's rendering:
// first the nearest enclosing if/ternary whose test has a recognized
// guard shape, else an if statement preceding the anchor's statement in
// the enclosing function body (the guard is an early return there).
func findGuard(tree *jsast.Tree, occ jsast.Occurrence) jsast.NodeID {
	for i := len(occ.Chain) - 1; i >= 0; i-- {
		node := occ.Chain[i]

		switch tree.Kind(node) {
		case jsast.KindIf, jsast.KindTernary:
			if _, _, ok := classifyGuardTest(tree, tree.ConditionalTest(node)); ok {
				return node
			}
		case jsast.KindFunctionDecl, jsast.KindFunctionExpr, jsast.KindArrow:
			return precedingGuard(tree, occ.Chain, i)
		default:
		}
	}

	return jsast.NoNode
}

// precedingGuard scans the statements of the enclosing function body
// that precede the anchor-bearing statement, innermost first, for an if
// statement with a recognized guard shape.
func precedingGuard(tree *jsast.Tree, chain []jsast.NodeID, fnIdx int) jsast.NodeID {
	body := tree.FunctionBody(chain[fnIdx])
	if tree.Kind(body) != jsast.KindBlock || fnIdx+2 >= len(chain) {
		return jsast.NoNode
	}

	// chain[fnIdx+1] is the body block, chain[fnIdx+2] the statement
	// containing the anchor.
	statements := tree.Children(body)

	anchorStmt := -1

	for i, stmt := range statements {
		if stmt == chain[fnIdx+2] {
			anchorStmt = i

			break
		}
	}

	for i := anchorStmt - 1; i >= 0; i-- {
		stmt := statements[i]
		if tree.Kind(stmt) != jsast.KindIf {
			continue
		}

		if _, _, ok := classifyGuardTest(tree, tree.ConditionalTest(stmt)); ok {
			return stmt
		}
	}

	return jsast.NoNode
}

// classifyGuardTest recognizes the two supported guard test shapes.
// Unpatched: `!` applied to a logical OR of two free identifiers; the
// returned node is the OR expression to replace. Patched: `!` applied to
// a constant truthy value (`!(!0)`, `!(true)`).
func classifyGuardTest(tree *jsast.Tree, test jsast.NodeID) (orExpr jsast.NodeID, patched, ok bool) {
	if tree.Kind(test) != jsast.KindUnary || tree.Op(test) != "!" {
		return jsast.NoNode, false, false
	}

	arg := tree.Unwrap(tree.Child(test, 0))

	if tree.Kind(arg) == jsast.KindBinary && tree.Op(arg) == "||" {
		left := tree.Unwrap(tree.Child(arg, 0))
		right := tree.Unwrap(tree.Child(arg, 1))

		if tree.Kind(left) == jsast.KindIdentifier && tree.Kind(right) == jsast.KindIdentifier {
			return arg, false, true
		}

		return jsast.NoNode, false, false
	}

	if tree.IsTrueLike(arg) {
		return jsast.NoNode, true, true
	}

	return jsast.NoNode, false, false
}
