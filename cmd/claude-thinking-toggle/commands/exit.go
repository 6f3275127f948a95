// Package commands implements CLI command handlers for
// claude-thinking-toggle.
package commands

import (
	"errors"

	"github.com/LanceVCS/claude-thinking-toggle/internal/patch"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// Process exit codes. Anything not mapped below exits with ExitError.
const (
	ExitOK             = 0
	ExitError          = 1
	ExitAmbiguous      = 2
	ExitVerifyFailed   = 3
	ExitAlreadyPatched = 4
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, sites.ErrAmbiguous):
		return ExitAmbiguous
	case errors.Is(err, patch.ErrVerificationFailed):
		return ExitVerifyFailed
	case errors.Is(err, patch.ErrAlreadyPatched):
		return ExitAlreadyPatched
	default:
		return ExitError
	}
}
