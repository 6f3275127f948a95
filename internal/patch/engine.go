package patch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// Sentinel errors for whole-run outcomes.
var (
	// ErrVerificationFailed means the edited text did not re-prove the
	// desired end state; nothing has been written.
	ErrVerificationFailed = errors.New("verification failed")
	// ErrAlreadyPatched reports that every exercised site already has
	// the desired shape, so there is nothing to do.
	ErrAlreadyPatched = errors.New("target is already fully patched")
)

// Outcome is the combined detection result of one scan pass.
type Outcome struct {
	Grammar string
	Results []sites.Result
	Edits   []sites.Edit
}

// Changed reports whether the pass produced edits.
func (o *Outcome) Changed() bool { return len(o.Edits) > 0 }

// AlreadyPatched reports whether at least one site was exercised and
// every exercised site already has the desired shape. A requested site
// whose anchor is present but unrecognizable disqualifies the state:
// that run did not reach its goal, so it must not report as complete.
func (o *Outcome) AlreadyPatched() bool {
	exercised := 0

	for _, r := range o.Results {
		switch r.Status {
		case sites.StatusPatched:
			exercised++
		case sites.StatusDetected, sites.StatusMismatch:
			return false
		default:
		}
	}

	return exercised > 0 && len(o.Edits) == 0
}

// Engine drives the detection and patch pipeline: parse, match per site,
// disambiguate, splice, verify. It holds no per-run state; all products
// are scoped to one invocation.
type Engine struct {
	parser   *jsast.Parser
	matchers []sites.Site
}

// NewEngine creates an Engine with the default matcher set.
func NewEngine() *Engine {
	return &Engine{
		parser:   jsast.NewParser(),
		matchers: sites.All(),
	}
}

// Plan parses the source text and runs every in-scope matcher, returning
// per-site results and the combined edit list. Fatal conditions (parse
// failure, ambiguity) return an error; per-site not-found and
// shape-mismatch outcomes are reported in the results and do not stop
// other sites.
func (e *Engine) Plan(ctx context.Context, src []byte, goal sites.Goal) (*Outcome, error) {
	tree, err := e.parser.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parse target: %w", err)
	}

	return e.scan(tree, goal)
}

func (e *Engine) scan(tree *jsast.Tree, goal sites.Goal) (*Outcome, error) {
	outcome := &Outcome{Grammar: tree.Grammar()}

	for _, site := range e.matchers {
		if !site.InScope(goal) {
			outcome.Results = append(outcome.Results, sites.Result{Site: site.Name(), Status: sites.StatusSkipped})

			continue
		}

		result, scanErr := site.Scan(tree, goal)
		if scanErr != nil {
			return nil, scanErr
		}

		outcome.Results = append(outcome.Results, result)
		outcome.Edits = append(outcome.Edits, result.Edits...)
	}

	return outcome, nil
}

// RunResult is the product of one full in-memory pipeline pass.
type RunResult struct {
	Outcome *Outcome
	Output  []byte
}

// Run executes the full in-memory pipeline: plan, splice, verify. The
// returned output is the patched text, verified but not yet written
// anywhere. When no site needs an edit, Output is src unchanged.
func (e *Engine) Run(ctx context.Context, src []byte, goal sites.Goal) (*RunResult, error) {
	outcome, err := e.Plan(ctx, src, goal)
	if err != nil {
		return nil, err
	}

	if !outcome.Changed() {
		return &RunResult{Outcome: outcome, Output: src}, nil
	}

	output, err := Splice(src, outcome.Edits)
	if err != nil {
		return nil, err
	}

	if err := e.Verify(ctx, output, goal, outcome); err != nil {
		return nil, err
	}

	return &RunResult{Outcome: outcome, Output: output}, nil
}

// Verify re-parses the edited text and re-runs every matcher that was
// exercised by the original pass, requiring each to now report the
// desired shape. The editor's output is never trusted on its own
// authority; it must re-prove itself through the same detection logic
// that decided to patch.
func (e *Engine) Verify(ctx context.Context, output []byte, goal sites.Goal, planned *Outcome) error {
	tree, err := e.parser.ParseWith(ctx, planned.Grammar, output)
	if err != nil {
		return fmt.Errorf("%w: edited text no longer parses: %w", ErrVerificationFailed, err)
	}

	verified, err := e.scan(tree, goal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	exercised := make(map[string]bool, len(planned.Results))

	for _, r := range planned.Results {
		if r.Status == sites.StatusDetected || r.Status == sites.StatusPatched {
			exercised[r.Site] = true
		}
	}

	var failures []string

	for _, r := range verified.Results {
		if !exercised[r.Site] {
			continue
		}

		if r.Status != sites.StatusPatched {
			failures = append(failures, fmt.Sprintf("%s: %s", r.Site, r.Status))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(failures, "; "))
	}

	return nil
}
