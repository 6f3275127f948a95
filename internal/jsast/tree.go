// Package jsast parses JavaScript source text into an arena-backed
// syntax tree that preserves exact byte offsets, so downstream passes can
// edit the original text without re-printing it.
package jsast

// Kind classifies an arena node. Node types the matchers never inspect
// collapse into KindOther but keep their children, so anchors buried in
// unrecognized constructs still get full ancestor chains.
type Kind uint8

// Node kinds, mapped from tree-sitter grammar node types.
const (
	KindOther Kind = iota
	KindProgram
	KindIdentifier
	KindPropertyIdentifier
	KindShorthandProperty
	KindShorthandPatternProperty
	KindString
	KindTemplateString
	KindTemplateSubstitution
	KindNumber
	KindTrue
	KindFalse
	KindNull
	KindUndefined
	KindCall
	KindArguments
	KindMember
	KindObject
	KindPair
	KindObjectPattern
	KindPairPattern
	KindIf
	KindElse
	KindTernary
	KindSwitch
	KindSwitchBody
	KindSwitchCase
	KindSwitchDefault
	KindReturn
	KindBlock
	KindUnary
	KindBinary
	KindParen
	KindSequence
	KindFunctionDecl
	KindFunctionExpr
	KindArrow
	KindFormalParams
	KindVarDeclarator
	KindAssignment
	KindExpressionStatement
)

var kindNames = map[Kind]string{
	KindOther:                    "other",
	KindProgram:                  "program",
	KindIdentifier:               "identifier",
	KindPropertyIdentifier:       "property_identifier",
	KindShorthandProperty:        "shorthand_property",
	KindShorthandPatternProperty: "shorthand_pattern_property",
	KindString:                   "string",
	KindTemplateString:           "template_string",
	KindTemplateSubstitution:     "template_substitution",
	KindNumber:                   "number",
	KindTrue:                     "true",
	KindFalse:                    "false",
	KindNull:                     "null",
	KindUndefined:                "undefined",
	KindCall:                     "call",
	KindArguments:                "arguments",
	KindMember:                   "member",
	KindObject:                   "object",
	KindPair:                     "pair",
	KindObjectPattern:            "object_pattern",
	KindPairPattern:              "pair_pattern",
	KindIf:                       "if",
	KindElse:                     "else",
	KindTernary:                  "ternary",
	KindSwitch:                   "switch",
	KindSwitchBody:               "switch_body",
	KindSwitchCase:               "switch_case",
	KindSwitchDefault:            "switch_default",
	KindReturn:                   "return",
	KindBlock:                    "block",
	KindUnary:                    "unary",
	KindBinary:                   "binary",
	KindParen:                    "paren",
	KindSequence:                 "sequence",
	KindFunctionDecl:             "function_declaration",
	KindFunctionExpr:             "function_expression",
	KindArrow:                    "arrow_function",
	KindFormalParams:             "formal_parameters",
	KindVarDeclarator:            "variable_declarator",
	KindAssignment:               "assignment",
	KindExpressionStatement:      "expression_statement",
}

// String returns a stable diagnostic name for the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "other"
	}

	return name
}

// NodeID indexes a node inside a Tree's arena.
type NodeID int32

// NoNode is the absent-node sentinel.
const NoNode NodeID = -1

// Node is one arena entry: a kind, a byte range over the original source,
// an operator token for unary/binary nodes, and child indexes. Nodes hold
// no parent references; ancestor context travels as an explicit stack.
type Node struct {
	Kind     Kind
	Op       string
	Start    int
	End      int
	Children []NodeID
}

// Tree is an immutable arena of nodes over one parsed source text.
// Index 0 is always the root.
type Tree struct {
	src        []byte
	nodes      []Node
	grammar    string
	errorNodes int
}

// Root returns the root node's ID.
func (t *Tree) Root() NodeID { return 0 }

// Grammar reports which grammar accepted the text.
func (t *Tree) Grammar() string { return t.grammar }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Source returns the original source text backing the tree.
func (t *Tree) Source() []byte { return t.src }

// Kind returns the kind of the given node.
func (t *Tree) Kind(id NodeID) Kind {
	if id == NoNode {
		return KindOther
	}

	return t.nodes[id].Kind
}

// Span returns the [start, end) byte range of the node.
func (t *Tree) Span(id NodeID) (start, end int) {
	n := &t.nodes[id]

	return n.Start, n.End
}

// Text returns the exact source bytes covered by the node.
func (t *Tree) Text(id NodeID) string {
	n := &t.nodes[id]

	return string(t.src[n.Start:n.End])
}

// Op returns the operator token of a unary or binary node, or "".
func (t *Tree) Op(id NodeID) string {
	return t.nodes[id].Op
}

// Children returns the named children of the node in document order.
// The returned slice is owned by the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Child returns the i-th named child, or NoNode when out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	children := t.nodes[id].Children
	if i < 0 || i >= len(children) {
		return NoNode
	}

	return children[i]
}

// Walk visits every node depth-first in document order. The chain slice
// passed to fn is the root-to-parent ancestor stack; it is reused across
// calls and must be copied if retained.
func (t *Tree) Walk(fn func(id NodeID, chain []NodeID) bool) {
	if len(t.nodes) == 0 {
		return
	}

	chain := make([]NodeID, 0, 64)
	t.walk(0, chain, fn)
}

func (t *Tree) walk(id NodeID, chain []NodeID, fn func(id NodeID, chain []NodeID) bool) {
	if !fn(id, chain) {
		return
	}

	chain = append(chain, id)

	for _, child := range t.nodes[id].Children {
		t.walk(child, chain, fn)
	}
}
