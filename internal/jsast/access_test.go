package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstOfKind walks the tree and returns the first node of the wanted
// kind in document order.
func firstOfKind(tree *Tree, kind Kind) NodeID {
	found := NoNode

	tree.Walk(func(id NodeID, _ []NodeID) bool {
		if found == NoNode && tree.Kind(id) == kind {
			found = id
		}

		return found == NoNode
	})

	return found
}

func TestUnwrap_ParenAndSequence(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `(0,X.createElement)(Y,null)`)

	call := firstOfKind(tree, KindCall)

	require.NotEqual(t, NoNode, call)

	callee := tree.Callee(call)

	assert.Equal(t, KindMember, tree.Kind(callee))
	assert.Equal(t, "createElement", tree.MemberProperty(callee))
}

func TestCallArguments(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `U.createElement(P,{bold:!0},"hello")`)

	call := firstOfKind(tree, KindCall)
	args := tree.CallArguments(call)

	require.Len(t, args, 3)
	assert.Equal(t, KindIdentifier, tree.Kind(args[0]))
	assert.Equal(t, KindObject, tree.Kind(args[1]))
	assert.Equal(t, KindString, tree.Kind(args[2]))
}

func TestConditionalTest_IfAndTernary(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `if(!(a||b))x();`)

	cond := firstOfKind(tree, KindIf)
	test := tree.ConditionalTest(cond)

	require.NotEqual(t, NoNode, test)
	assert.Equal(t, KindUnary, tree.Kind(test))
	assert.Equal(t, "!", tree.Op(test))

	tree = parseSource(t, `let r=q?1:2`)

	ternary := firstOfKind(tree, KindTernary)

	assert.Equal(t, KindIdentifier, tree.Kind(tree.ConditionalTest(ternary)))
}

func TestObjectProperty_OrderIndependentLookup(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `let o={bold:!0,color:"#FF0000",dim:1}`)

	obj := firstOfKind(tree, KindObject)

	prop, found := tree.ObjectProperty(obj, "color")

	require.True(t, found)

	value, isString := tree.StringValue(prop.Value)

	require.True(t, isString)
	assert.Equal(t, "#FF0000", value)

	_, found = tree.ObjectProperty(obj, "missing")

	assert.False(t, found)
}

func TestObjectProperty_ShorthandAndStringKey(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `let o={color,"size":2}`)

	obj := firstOfKind(tree, KindObject)

	prop, found := tree.ObjectProperty(obj, "color")

	require.True(t, found)
	assert.Equal(t, prop.Node, prop.Value)

	_, found = tree.ObjectProperty(obj, "size")

	assert.True(t, found)
}

func TestFunctionParams_PatternAndBareArrow(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `function W({children:A,color:B}){return A}`)

	fn := firstOfKind(tree, KindFunctionDecl)
	params := tree.FunctionParams(fn)

	require.Len(t, params, 1)
	assert.Equal(t, KindObjectPattern, tree.Kind(params[0]))

	_, found := tree.ObjectProperty(params[0], "children")

	assert.True(t, found)

	tree = parseSource(t, `let f=x=>x+1`)

	arrow := firstOfKind(tree, KindArrow)
	params = tree.FunctionParams(arrow)

	require.Len(t, params, 1)
	assert.Equal(t, "x", tree.Text(params[0]))
}

func TestSwitchCaseBody_UnwrapsBlock(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `switch(v){case"a":{f();return 1}case"b":return 2}`)

	first := firstOfKind(tree, KindSwitchCase)
	body := tree.SwitchCaseBody(first)

	require.Len(t, body, 2)
	assert.Equal(t, KindReturn, tree.Kind(body[1]))
}

func TestIsTrueLike(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `let a=[!0,true,1,0,!1,x]`)

	assert.True(t, tree.IsTrueLike(firstOfKind(tree, KindUnary)))
	assert.True(t, tree.IsTrueLike(firstOfKind(tree, KindTrue)))
	assert.False(t, tree.IsTrueLike(firstOfKind(tree, KindIdentifier)))
}

func TestIdentifiers_CollectsSubtreeNames(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `function W(c0){return c0+c2}`)

	fn := firstOfKind(tree, KindFunctionDecl)
	used := tree.Identifiers(fn)

	assert.Contains(t, used, "c0")
	assert.Contains(t, used, "c2")
	assert.NotContains(t, used, "c1")
}
