package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrThresholdExceeded matches every ThresholdExceededError via errors.Is.
	ErrThresholdExceeded = errors.New("violations limit exceeded")

	// ErrInvalidConfig is wrapped by configuration validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidViolations is wrapped when a violations record is malformed.
	ErrInvalidViolations = errors.New("invalid violations record")

	// ErrNoViolationsInput is returned when a run names no violations source.
	ErrNoViolationsInput = errors.New("no violations files given (use --violations or set violations in .lintgate.yaml)")
)

// ThresholdExceededError is returned when the summed violations of a run go
// past the penalty policy. It must fail the build.
type ThresholdExceededError struct {
	ExcessErrors   int
	ExcessWarnings int
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf("Violations limit exceeded by %d errors, %d warnings.", e.ExcessErrors, e.ExcessWarnings)
}

// Is makes errors.Is(err, ErrThresholdExceeded) true.
func (e *ThresholdExceededError) Is(target error) bool {
	return target == ErrThresholdExceeded
}

// IsThresholdExceeded reports whether err (or anything it wraps) is a
// ThresholdExceededError.
func IsThresholdExceeded(err error) bool {
	return errors.Is(err, ErrThresholdExceeded)
}
