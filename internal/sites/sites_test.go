package sites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
	"github.com/LanceVCS/claude-thinking-toggle/internal/patch"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

func parseTree(t *testing.T, src string) *jsast.Tree {
	t.Helper()

	tree, err := jsast.NewParser().Parse(context.Background(), []byte(src))

	require.NoError(t, err)

	return tree
}

// applyEdits splices the scan's edits into the source.
func applyEdits(t *testing.T, src string, edits []sites.Edit) string {
	t.Helper()

	out, err := patch.Splice([]byte(src), edits)

	require.NoError(t, err)

	return string(out)
}

const guardedPanel = `function R(){if(!(Z1||E9))return null;return U.createElement(B7,null,"✻ Thinking…")}`

func TestVisibility_DetectsGuard(t *testing.T) {
	t.Parallel()

	site := &sites.VisibilitySite{}
	goal := sites.Goal{ForceVisible: true}

	result, err := site.Scan(parseTree(t, guardedPanel), goal)

	require.NoError(t, err)
	assert.Equal(t, sites.StatusDetected, result.Status)
	require.Len(t, result.Edits, 1)
	assert.Equal(t, "!0", result.Edits[0].Replacement)

	patched := applyEdits(t, guardedPanel, result.Edits)

	assert.Contains(t, patched, "if(!(!0))")
}

func TestVisibility_PatchedFormIsRecognized(t *testing.T) {
	t.Parallel()

	site := &sites.VisibilitySite{}
	goal := sites.Goal{ForceVisible: true}

	first, err := site.Scan(parseTree(t, guardedPanel), goal)

	require.NoError(t, err)

	patched := applyEdits(t, guardedPanel, first.Edits)

	second, err := site.Scan(parseTree(t, patched), goal)

	require.NoError(t, err)
	assert.Equal(t, sites.StatusPatched, second.Status)
	assert.Empty(t, second.Edits)
}

func TestVisibility_TernaryGuard(t *testing.T) {
	t.Parallel()

	src := `let V=!(Z1||E9)?null:U.createElement(B7,null,"✻ Thinking…")`

	result, err := (&sites.VisibilitySite{}).Scan(parseTree(t, src), sites.Goal{ForceVisible: true})

	require.NoError(t, err)
	assert.Equal(t, sites.StatusDetected, result.Status)
}

func TestVisibility_AnchorAbsent(t *testing.T) {
	t.Parallel()

	result, err := (&sites.VisibilitySite{}).Scan(parseTree(t, `f("nothing here")`), sites.Goal{ForceVisible: true})

	require.NoError(t, err)
	assert.Equal(t, sites.StatusNotFound, result.Status)
}

func TestVisibility_NoGuardIsMismatch(t *testing.T) {
	t.Parallel()

	src := `U.createElement(B7,null,"✻ Thinking…")`

	result, err := (&sites.VisibilitySite{}).Scan(parseTree(t, src), sites.Goal{ForceVisible: true})

	require.NoError(t, err)
	assert.Equal(t, sites.StatusMismatch, result.Status)
}

func TestVisibility_TwoUnpatchedGuardsAbort(t *testing.T) {
	t.Parallel()

	src := `function R(){if(!(a||b))return null;return U.createElement(X,null,"✻ Thinking…")}` +
		`function S(){if(!(c||d))return null;return U.createElement(Y,null,"✻ Thinking…")}`

	_, err := (&sites.VisibilitySite{}).Scan(parseTree(t, src), sites.Goal{ForceVisible: true})

	require.ErrorIs(t, err, sites.ErrAmbiguous)
}

func TestVisibility_OnePatchedOneUnpatched(t *testing.T) {
	t.Parallel()

	src := `function R(){if(!(!0))return null;return U.createElement(X,null,"✻ Thinking…")}` +
		`function S(){if(!(c||d))return null;return U.createElement(Y,null,"✻ Thinking…")}`

	result, err := (&sites.VisibilitySite{}).Scan(parseTree(t, src), sites.Goal{ForceVisible: true})

	require.NoError(t, err)
	assert.Equal(t, sites.StatusDetected, result.Status)
	require.Len(t, result.Edits, 1)

	patched := applyEdits(t, src, result.Edits)

	assert.NotContains(t, patched, "c||d")
}

func TestVisibility_FallbackAnchorVariant(t *testing.T) {
	t.Parallel()

	src := `function R(){if(!(a||b))return null;return U.createElement(X,null,"Thinking…")}`

	result, err := (&sites.VisibilitySite{}).Scan(parseTree(t, src), sites.Goal{ForceVisible: true})

	require.NoError(t, err)
	assert.Equal(t, sites.StatusDetected, result.Status)
}

func TestVisibility_OutOfScope(t *testing.T) {
	t.Parallel()

	assert.False(t, (&sites.VisibilitySite{}).InScope(sites.Goal{}))
	assert.True(t, (&sites.VisibilitySite{}).InScope(sites.Goal{ForceVisible: true}))
}

func TestAll_ScanOrder(t *testing.T) {
	t.Parallel()

	all := sites.All()

	require.Len(t, all, 3)
	assert.Equal(t, "visibility", all[0].Name())
	assert.Equal(t, "header-color", all[1].Name())
	assert.Equal(t, "content-color", all[2].Name())
}
