package dist

import (
	"errors"
	"fmt"
)

// The error kinds are deliberately a small closed set so that callers can
// tell "your input is invalid" apart from "the function is mathematically
// unbounded here" apart from "the numerical method could not converge"
// (the last is solve.ErrNoConvergence, surfaced unchanged).
var (
	// ErrInvalidParam wraps construction failures: a non-positive shape
	// parameter or solver accuracy.
	ErrInvalidParam = errors.New("invalid distribution parameter")

	// ErrProbabilityRange wraps quantile requests outside [0, 1].
	ErrProbabilityRange = errors.New("probability out of range")
)

// DomainError reports a density evaluation at a support boundary where
// the density is analytically unbounded: x=0 with alpha < 1, or x=1 with
// beta < 1. It names the offending shape parameter rather than silently
// returning +Inf.
type DomainError struct {
	X     float64
	Shape string
	Value float64
}

func (de *DomainError) Error() string {
	return fmt.Sprintf("beta density is unbounded at x=%v: %s=%v is less than 1", de.X, de.Shape, de.Value)
}
