package patch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// fullTarget exercises all three sites: a guarded header render, and a
// tag-dispatched content component.
const fullTarget = `function D2({children:W}){return U.createElement(U8,{},W)}` +
	`function R(A){if(!(Z1||E9))return null;return U.createElement(B7,{bold:!0},"✻ Thinking…")}` +
	`function Q(A){switch(A.type){case"thinking":return U.createElement(D2,{italic:!0},A.text)}return null}`

var fullGoal = sites.Goal{
	ForceVisible: true,
	HeaderColor:  "#FF6600",
	ContentColor: "#00AA00",
}

func TestEngine_RunPatchesAllSites(t *testing.T) {
	t.Parallel()

	run, err := NewEngine().Run(context.Background(), []byte(fullTarget), fullGoal)

	require.NoError(t, err)
	require.NotNil(t, run)
	assert.True(t, run.Outcome.Changed())

	out := string(run.Output)

	assert.Contains(t, out, "if(!(!0))")
	assert.Contains(t, out, `{color:"#FF6600",bold:!0}`)
	assert.Contains(t, out, `{color:"#00AA00",italic:!0}`)
	assert.Contains(t, out, `{children:W,color:c0}`)

	for _, result := range run.Outcome.Results {
		assert.Equal(t, sites.StatusDetected, result.Status, result.Site)
	}
}

func TestEngine_SecondRunReportsAlreadyPatched(t *testing.T) {
	t.Parallel()

	first, err := NewEngine().Run(context.Background(), []byte(fullTarget), fullGoal)

	require.NoError(t, err)

	outcome, err := NewEngine().Plan(context.Background(), first.Output, fullGoal)

	require.NoError(t, err)
	assert.True(t, outcome.AlreadyPatched())
	assert.False(t, outcome.Changed())

	for _, result := range outcome.Results {
		assert.Equal(t, sites.StatusPatched, result.Status, result.Site)
	}
}

func TestEngine_MismatchedSiteBlocksAlreadyPatched(t *testing.T) {
	t.Parallel()

	// The guard already carries the patched form, but the header anchor
	// is rendered by a plain call the matcher cannot rewrite. Such a run
	// left a requested site unreached and must not report as complete.
	src := `function R(A){if(!(!0))return null;return f(B7,{bold:!0},"✻ Thinking…")}`
	goal := sites.Goal{ForceVisible: true, HeaderColor: "#FF6600"}

	outcome, err := NewEngine().Plan(context.Background(), []byte(src), goal)

	require.NoError(t, err)

	byName := make(map[string]sites.Status)

	for _, result := range outcome.Results {
		byName[result.Site] = result.Status
	}

	assert.Equal(t, sites.StatusPatched, byName["visibility"])
	assert.Equal(t, sites.StatusMismatch, byName["header-color"])
	assert.False(t, outcome.AlreadyPatched())
	assert.False(t, outcome.Changed())
}

func TestEngine_VisibilityOnlyGoalSkipsColorSites(t *testing.T) {
	t.Parallel()

	goal := sites.Goal{ForceVisible: true}

	outcome, err := NewEngine().Plan(context.Background(), []byte(fullTarget), goal)

	require.NoError(t, err)

	byName := make(map[string]sites.Status)

	for _, result := range outcome.Results {
		byName[result.Site] = result.Status
	}

	assert.Equal(t, sites.StatusDetected, byName["visibility"])
	assert.Equal(t, sites.StatusSkipped, byName["header-color"])
	assert.Equal(t, sites.StatusSkipped, byName["content-color"])
}

func TestEngine_NotFoundSiteDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	src := `function R(A){if(!(Z1||E9))return null;return U.createElement(B7,{},"✻ Thinking…")}`
	goal := sites.Goal{ForceVisible: true, ContentColor: "#00AA00"}

	outcome, err := NewEngine().Plan(context.Background(), []byte(src), goal)

	require.NoError(t, err)

	byName := make(map[string]sites.Status)

	for _, result := range outcome.Results {
		byName[result.Site] = result.Status
	}

	assert.Equal(t, sites.StatusDetected, byName["visibility"])
	assert.Equal(t, sites.StatusNotFound, byName["content-color"])
	assert.True(t, outcome.Changed())
}

func TestEngine_AmbiguityIsFatal(t *testing.T) {
	t.Parallel()

	src := `function R(){if(!(a||b))return null;return U.createElement(X,null,"✻ Thinking…")}` +
		`function S(){if(!(c||d))return null;return U.createElement(Y,null,"✻ Thinking…")}`

	_, err := NewEngine().Plan(context.Background(), []byte(src), sites.Goal{ForceVisible: true})

	require.ErrorIs(t, err, sites.ErrAmbiguous)
}

func TestEngine_ParseFailureIsFatal(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().Plan(context.Background(), []byte(`function ({ ) ]`), sites.Goal{ForceVisible: true})

	require.Error(t, err)
}

func TestEngine_VerifyRejectsTamperedOutput(t *testing.T) {
	t.Parallel()

	engine := NewEngine()

	planned, err := engine.Plan(context.Background(), []byte(fullTarget), fullGoal)

	require.NoError(t, err)

	// The unedited text still scans as detected, so it cannot pass
	// verification of a pass that claims to have patched it.
	err = engine.Verify(context.Background(), []byte(fullTarget), fullGoal, planned)

	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestOutcome_AlreadyPatchedRequiresExercisedSite(t *testing.T) {
	t.Parallel()

	empty := &Outcome{Results: []sites.Result{
		{Site: "visibility", Status: sites.StatusNotFound},
		{Site: "header-color", Status: sites.StatusSkipped},
	}}

	assert.False(t, empty.AlreadyPatched())
}
