package jsast

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Sentinel errors for parsing.
var (
	ErrParse       = errors.New("no supported grammar accepts the source text")
	errEmptySource = errors.New("empty source text")
	errNoRootNode  = errors.New("parser produced no root node")
	errUnknownLang = errors.New("unknown grammar name")
)

// kindFromType maps tree-sitter grammar node types onto arena kinds.
// Both the javascript and tsx grammars use these names; older grammar
// revisions call function expressions plain "function".
var kindFromType = map[string]Kind{
	"program":                               KindProgram,
	"identifier":                            KindIdentifier,
	"property_identifier":                   KindPropertyIdentifier,
	"shorthand_property_identifier":         KindShorthandProperty,
	"shorthand_property_identifier_pattern": KindShorthandPatternProperty,
	"string":                                KindString,
	"template_string":                       KindTemplateString,
	"template_substitution":                 KindTemplateSubstitution,
	"number":                                KindNumber,
	"true":                                  KindTrue,
	"false":                                 KindFalse,
	"null":                                  KindNull,
	"undefined":                             KindUndefined,
	"call_expression":                       KindCall,
	"arguments":                             KindArguments,
	"member_expression":                     KindMember,
	"object":                                KindObject,
	"pair":                                  KindPair,
	"object_pattern":                        KindObjectPattern,
	"pair_pattern":                          KindPairPattern,
	"if_statement":                          KindIf,
	"else_clause":                           KindElse,
	"ternary_expression":                    KindTernary,
	"switch_statement":                      KindSwitch,
	"switch_body":                           KindSwitchBody,
	"switch_case":                           KindSwitchCase,
	"switch_default":                        KindSwitchDefault,
	"return_statement":                      KindReturn,
	"statement_block":                       KindBlock,
	"unary_expression":                      KindUnary,
	"binary_expression":                     KindBinary,
	"parenthesized_expression":              KindParen,
	"sequence_expression":                   KindSequence,
	"function_declaration":                  KindFunctionDecl,
	"function_expression":                   KindFunctionExpr,
	"function":                              KindFunctionExpr,
	"generator_function_declaration":        KindFunctionDecl,
	"generator_function":                    KindFunctionExpr,
	"arrow_function":                        KindArrow,
	"formal_parameters":                     KindFormalParams,
	"variable_declarator":                   KindVarDeclarator,
	"assignment_expression":                 KindAssignment,
	"augmented_assignment_expression":       KindAssignment,
	"expression_statement":                  KindExpressionStatement,
}

// operator-bearing grammar node types; the operator token is captured at
// conversion time because it is an anonymous child in the grammar.
var operatorTypes = map[string]bool{
	"unary_expression":                true,
	"binary_expression":               true,
	"augmented_assignment_expression": true,
}

type grammar struct {
	name string
	lang *sitter.Language
}

// Parser turns JavaScript source text into an arena Tree. The target's
// wrapping style is not guaranteed across builds, so parsing tries the
// javascript grammar first and falls back to tsx; a grammar accepts the
// text only when its tree carries no error nodes.
type Parser struct {
	grammars []grammar
}

// NewParser creates a Parser with the default grammar fallback chain.
func NewParser() *Parser {
	return &Parser{
		grammars: []grammar{
			{name: "javascript", lang: sitter.NewLanguage(javascript.GetLanguage())},
			{name: "tsx", lang: sitter.NewLanguage(tsx.GetLanguage())},
		},
	}
}

// Parse parses the source text, trying each grammar in order. The first
// grammar whose parse tree is free of error nodes wins. If none accepts,
// ErrParse is returned and no patching may proceed.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Tree, error) {
	if len(src) == 0 {
		return nil, errEmptySource
	}

	var lastErr error

	for _, g := range p.grammars {
		tree, err := p.parseWith(ctx, g, src)
		if err != nil {
			lastErr = err

			continue
		}

		return tree, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, lastErr)
	}

	return nil, ErrParse
}

// ParseWith parses with a single named grammar, without fallback. Used by
// verification to re-parse edited text under the grammar that accepted
// the original.
func (p *Parser) ParseWith(ctx context.Context, name string, src []byte) (*Tree, error) {
	for _, g := range p.grammars {
		if g.name != name {
			continue
		}

		tree, err := p.parseWith(ctx, g, src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		return tree, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownLang, name)
}

func (p *Parser) parseWith(ctx context.Context, g grammar, src []byte) (*Tree, error) {
	tsParser := sitter.NewParser()
	tsParser.SetLanguage(g.lang)

	tsTree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.name, err)
	}
	defer tsTree.Close()

	root := tsTree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("%s: %w", g.name, errNoRootNode)
	}

	tree := &Tree{
		src:     src,
		nodes:   make([]Node, 0, 1024),
		grammar: g.name,
	}

	tree.convert(root)

	if tree.errorNodes > 0 {
		return nil, fmt.Errorf("%s: grammar rejected the text (%d error nodes)", g.name, tree.errorNodes)
	}

	return tree, nil
}

// convert copies one tree-sitter node (and, recursively, its named
// children) into the arena, returning its index.
func (t *Tree) convert(tsNode sitter.Node) NodeID {
	nodeType := tsNode.Type()
	if nodeType == "ERROR" {
		t.errorNodes++
	}

	kind, ok := kindFromType[nodeType]
	if !ok {
		kind = KindOther
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:  kind,
		Start: int(tsNode.StartByte()),
		End:   int(tsNode.EndByte()),
	})

	if operatorTypes[nodeType] {
		opNode := tsNode.ChildByFieldName("operator")
		if !opNode.IsNull() {
			t.nodes[id].Op = string(t.src[opNode.StartByte():opNode.EndByte()])
		}
	}

	count := tsNode.NamedChildCount()
	if count == 0 {
		return id
	}

	children := make([]NodeID, 0, count)

	for idx := range count {
		child := tsNode.NamedChild(idx)
		if child.IsNull() {
			continue
		}

		if child.Type() == "comment" {
			continue
		}

		children = append(children, t.convert(child))
	}

	t.nodes[id].Children = children

	return id
}
