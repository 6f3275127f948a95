package sites

import (
	"fmt"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
)

// isCreateElement reports whether the call's target resolves, after
// unwrapping no-op evaluation wrappers, to a member access ending in the
// UI construction method name. This distinguishes "this literal is a
// rendered child" from the same literal appearing as the receiver of an
// unrelated string method.
func isCreateElement(tree *jsast.Tree, call jsast.NodeID) bool {
	if tree.Kind(call) != jsast.KindCall {
		return false
	}

	return tree.MemberProperty(tree.Callee(call)) == createElementMethod
}

// elementProps returns the props argument of a UI construction call.
func elementProps(tree *jsast.Tree, call jsast.NodeID) jsast.NodeID {
	args := tree.CallArguments(call)
	if len(args) < 2 {
		return jsast.NoNode
	}

	return tree.Unwrap(args[1])
}

// colorPropEdits computes the minimal edits that give a props node a
// color property with the exact quoted hex value. The returned patched
// flag is true when the current shape already equals the desired one.
// ok is false when the props node has no supported shape (for example a
// spread of a dynamic expression).
func colorPropEdits(tree *jsast.Tree, props jsast.NodeID, hex string) (edits []Edit, patched, ok bool) {
	quoted := fmt.Sprintf("%q", hex)

	switch tree.Kind(props) {
	case jsast.KindObject:
	case jsast.KindNull, jsast.KindUndefined:
		// No props at all: the whole argument becomes a fresh object.
		start, end := tree.Span(props)

		return []Edit{{Start: start, End: end, Replacement: "{" + colorProp + ":" + quoted + "}"}}, false, true
	default:
		return nil, false, false
	}

	prop, found := tree.ObjectProperty(props, colorProp)
	if !found {
		start, _ := tree.Span(props)
		insert := colorProp + ":" + quoted

		if len(tree.Children(props)) > 0 {
			insert += ","
		}

		// Right after the opening brace.
		return []Edit{{Start: start + 1, End: start + 1, Replacement: insert}}, false, true
	}

	if value, isString := tree.StringValue(prop.Value); isString && value == hex {
		return nil, true, true
	}

	if prop.Value == prop.Node {
		// Shorthand property: rewrite the whole entry.
		start, end := tree.Span(prop.Node)

		return []Edit{{Start: start, End: end, Replacement: colorProp + ":" + quoted}}, false, true
	}

	start, end := tree.Span(prop.Value)

	return []Edit{{Start: start, End: end, Replacement: quoted}}, false, true
}

// hasColorProp reports whether an object literal carries a color
// property under any value.
func hasColorProp(tree *jsast.Tree, props jsast.NodeID) bool {
	_, found := tree.ObjectProperty(props, colorProp)

	return found
}
