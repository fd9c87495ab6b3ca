package cli

import (
	"errors"

	"github.com/lintgate/lintgate/internal/domain"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitLimitExceeded = 1
	ExitUsageOrInput  = 2
)

// ExitError carries the exit status a command wants the process to end with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if domain.IsThresholdExceeded(err) {
		return ExitLimitExceeded
	}
	return ExitUsageOrInput
}
