package jsast

// Structural accessors over arena nodes. These encode the grammar's
// named-child layout so matchers can read call/conditional/object shapes
// without depending on tree-sitter field names.

// Unwrap strips no-op evaluation wrappers: parenthesized expressions and
// comma sequences (minifiers emit callees like `(0,X.createElement)`).
// For a sequence, the value is its last operand.
func (t *Tree) Unwrap(id NodeID) NodeID {
	for id != NoNode {
		children := t.nodes[id].Children

		switch t.nodes[id].Kind {
		case KindParen:
			if len(children) != 1 {
				return id
			}

			id = children[0]
		case KindSequence:
			if len(children) == 0 {
				return id
			}

			id = children[len(children)-1]
		default:
			return id
		}
	}

	return id
}

// Callee returns the call target of a call expression, unwrapped.
func (t *Tree) Callee(id NodeID) NodeID {
	if t.Kind(id) != KindCall {
		return NoNode
	}

	return t.Unwrap(t.Child(id, 0))
}

// CallArguments returns the argument nodes of a call expression.
func (t *Tree) CallArguments(id NodeID) []NodeID {
	if t.Kind(id) != KindCall {
		return nil
	}

	children := t.nodes[id].Children
	if len(children) < 2 {
		return nil
	}

	argList := children[len(children)-1]
	if t.Kind(argList) != KindArguments {
		return nil
	}

	return t.Children(argList)
}

// MemberProperty returns the property name of a member expression, or "".
func (t *Tree) MemberProperty(id NodeID) string {
	if t.Kind(id) != KindMember {
		return ""
	}

	children := t.nodes[id].Children
	if len(children) == 0 {
		return ""
	}

	prop := children[len(children)-1]
	if t.Kind(prop) != KindPropertyIdentifier {
		return ""
	}

	return t.Text(prop)
}

// ConditionalTest returns the (unwrapped) test expression of an if
// statement or ternary expression, or NoNode for other kinds.
func (t *Tree) ConditionalTest(id NodeID) NodeID {
	switch t.Kind(id) {
	case KindIf, KindTernary:
		return t.Unwrap(t.Child(id, 0))
	default:
		return NoNode
	}
}

// Property describes one logical key of an object literal or pattern.
type Property struct {
	Node  NodeID // the pair / shorthand node
	Key   string
	Value NodeID // value node; for shorthands, the shorthand node itself
}

// ObjectProperties lists the logical properties of an object literal or
// object pattern by key, regardless of declaration order. Computed keys
// and spreads are skipped.
func (t *Tree) ObjectProperties(id NodeID) []Property {
	kind := t.Kind(id)
	if kind != KindObject && kind != KindObjectPattern {
		return nil
	}

	props := make([]Property, 0, len(t.nodes[id].Children))

	for _, child := range t.nodes[id].Children {
		switch t.Kind(child) {
		case KindPair, KindPairPattern:
			key, ok := t.propertyKey(t.Child(child, 0))
			if !ok {
				continue
			}

			props = append(props, Property{Node: child, Key: key, Value: t.Child(child, 1)})
		case KindShorthandProperty, KindShorthandPatternProperty:
			props = append(props, Property{Node: child, Key: t.Text(child), Value: child})
		default:
		}
	}

	return props
}

// ObjectProperty finds a property by logical key. Lookup never assumes a
// fixed declaration position.
func (t *Tree) ObjectProperty(id NodeID, key string) (Property, bool) {
	for _, prop := range t.ObjectProperties(id) {
		if prop.Key == key {
			return prop, true
		}
	}

	return Property{}, false
}

func (t *Tree) propertyKey(id NodeID) (string, bool) {
	switch t.Kind(id) {
	case KindPropertyIdentifier, KindIdentifier:
		return t.Text(id), true
	case KindString:
		return t.StringValue(id)
	default:
		return "", false
	}
}

// FunctionParams returns the parameter nodes of a function declaration,
// function expression, or arrow function.
func (t *Tree) FunctionParams(id NodeID) []NodeID {
	switch t.Kind(id) {
	case KindFunctionDecl, KindFunctionExpr, KindArrow:
	default:
		return nil
	}

	for _, child := range t.nodes[id].Children {
		if t.Kind(child) == KindFormalParams {
			return t.Children(child)
		}
	}

	// Arrow functions with a single bare parameter have no formal
	// parameter list node.
	if t.Kind(id) == KindArrow {
		children := t.nodes[id].Children
		if len(children) == 2 && t.Kind(children[0]) == KindIdentifier {
			return children[:1]
		}
	}

	return nil
}

// FunctionBody returns the body node of a function-like node.
func (t *Tree) FunctionBody(id NodeID) NodeID {
	switch t.Kind(id) {
	case KindFunctionDecl, KindFunctionExpr, KindArrow:
	default:
		return NoNode
	}

	children := t.nodes[id].Children
	if len(children) == 0 {
		return NoNode
	}

	return children[len(children)-1]
}

// SwitchCaseValue returns the (unwrapped) tested value of a switch case.
func (t *Tree) SwitchCaseValue(id NodeID) NodeID {
	if t.Kind(id) != KindSwitchCase {
		return NoNode
	}

	return t.Unwrap(t.Child(id, 0))
}

// SwitchCaseBody returns the statements of a switch case, unwrapping an
// optional single block.
func (t *Tree) SwitchCaseBody(id NodeID) []NodeID {
	if t.Kind(id) != KindSwitchCase {
		return nil
	}

	children := t.nodes[id].Children
	if len(children) < 2 {
		return nil
	}

	body := children[1:]
	if len(body) == 1 && t.Kind(body[0]) == KindBlock {
		return t.Children(body[0])
	}

	return body
}

// IsTrueLike reports whether the node is a constant that evaluates
// truthy: the `true` literal, a nonzero number, or minified `!0`.
func (t *Tree) IsTrueLike(id NodeID) bool {
	id = t.Unwrap(id)

	switch t.Kind(id) {
	case KindTrue:
		return true
	case KindNumber:
		text := t.Text(id)

		return text != "0" && text != "0.0"
	case KindUnary:
		if t.Op(id) != "!" {
			return false
		}

		arg := t.Unwrap(t.Child(id, 0))

		return t.Kind(arg) == KindNumber && t.Text(arg) == "0"
	default:
		return false
	}
}

// Identifiers collects the text of every identifier-like node in the
// subtree rooted at id. Used to pick fresh binding names that cannot
// collide with minified locals.
func (t *Tree) Identifiers(id NodeID) map[string]struct{} {
	seen := make(map[string]struct{})

	var visit func(NodeID)

	visit = func(n NodeID) {
		switch t.Kind(n) {
		case KindIdentifier, KindPropertyIdentifier, KindShorthandProperty, KindShorthandPatternProperty:
			seen[t.Text(n)] = struct{}{}
		default:
		}

		for _, child := range t.nodes[n].Children {
			visit(child)
		}
	}

	if id != NoNode {
		visit(id)
	}

	return seen
}
