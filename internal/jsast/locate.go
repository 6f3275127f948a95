package jsast

import "slices"

// Occurrence is one literal node matching a searched value, paired with
// its root-to-parent ancestor chain in document order.
type Occurrence struct {
	Node  NodeID
	Chain []NodeID
}

// FindLiteral collects every string or constant template literal whose
// decoded value equals value, in document order. Zero, one, or many
// results are all valid outcomes; callers decide what each count means.
func (t *Tree) FindLiteral(value string) []Occurrence {
	var found []Occurrence

	t.Walk(func(id NodeID, chain []NodeID) bool {
		kind := t.Kind(id)
		if kind != KindString && kind != KindTemplateString {
			return true
		}

		decoded, ok := t.StringValue(id)
		if ok && decoded == value {
			found = append(found, Occurrence{Node: id, Chain: slices.Clone(chain)})
		}

		// String content never nests further literals.
		return false
	})

	return found
}

// NearestAncestor walks the chain from the innermost ancestor outward and
// returns the first node of one of the wanted kinds, together with its
// index in the chain.
func NearestAncestor(t *Tree, chain []NodeID, kinds ...Kind) (NodeID, int) {
	for i := len(chain) - 1; i >= 0; i-- {
		if slices.Contains(kinds, t.Kind(chain[i])) {
			return chain[i], i
		}
	}

	return NoNode, -1
}

// FunctionBindings finds every function-like value bound to the given
// name: function declarations, variable declarators initialized with a
// function or arrow, and plain assignments to an identifier.
func (t *Tree) FunctionBindings(name string) []NodeID {
	var found []NodeID

	t.Walk(func(id NodeID, _ []NodeID) bool {
		switch t.Kind(id) {
		case KindFunctionDecl:
			children := t.Children(id)
			if len(children) > 0 && t.Kind(children[0]) == KindIdentifier && t.Text(children[0]) == name {
				found = append(found, id)
			}
		case KindVarDeclarator, KindAssignment:
			children := t.Children(id)
			if len(children) != 2 {
				return true
			}

			target, value := children[0], t.Unwrap(children[1])
			if t.Kind(target) != KindIdentifier || t.Text(target) != name {
				return true
			}

			switch t.Kind(value) {
			case KindFunctionExpr, KindArrow:
				found = append(found, value)
			default:
			}
		default:
		}

		return true
	})

	return found
}
