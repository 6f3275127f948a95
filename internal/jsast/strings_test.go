package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue_DecodesEscapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		literal string
		want    string
	}{
		{name: "plain", literal: `"thinking"`, want: "thinking"},
		{name: "single quotes", literal: `'thinking'`, want: "thinking"},
		{name: "newline and tab", literal: `"a\nb\tc"`, want: "a\nb\tc"},
		{name: "hex escape", literal: `"\x41"`, want: "A"},
		{name: "unicode escape", literal: `"…"`, want: "…"},
		{name: "code point escape", literal: `"\u{273B} Thinking\u{2026}"`, want: "✻ Thinking…"},
		{name: "escaped quote", literal: `"say \"hi\""`, want: `say "hi"`},
		{name: "raw unicode", literal: `"✻ Thinking…"`, want: "✻ Thinking…"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree := parseSource(t, `let s=`+tc.literal)

			node := firstOfKind(tree, KindString)

			require.NotEqual(t, NoNode, node)

			got, ok := tree.StringValue(node)

			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringValue_ConstantTemplate(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, "let s=`Thinking…`")

	node := firstOfKind(tree, KindTemplateString)

	require.NotEqual(t, NoNode, node)

	got, ok := tree.StringValue(node)

	require.True(t, ok)
	assert.Equal(t, "Thinking…", got)
}

func TestStringValue_TemplateWithSubstitution(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, "let s=`Thinking ${n}`")

	node := firstOfKind(tree, KindTemplateString)

	require.NotEqual(t, NoNode, node)

	_, ok := tree.StringValue(node)

	assert.False(t, ok)
}

func TestStringValue_NonStringNode(t *testing.T) {
	t.Parallel()

	tree := parseSource(t, `let n=1`)

	_, ok := tree.StringValue(firstOfKind(tree, KindNumber))

	assert.False(t, ok)
}
