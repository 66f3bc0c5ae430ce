package lsq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a malformed interval, a non-positive
	// sample count or a nil sampled function.
	ErrInvalidArgument = errors.New("lsq: invalid argument")

	// ErrNotFitted is returned by Evaluate when no successful fit is stored.
	ErrNotFitted = errors.New("lsq: session not fitted")

	// ErrPreconditionUnmet indicates that Fit was called without basis
	// functions or without data points.
	ErrPreconditionUnmet = errors.New("lsq: precondition unmet")

	// ErrNoBasis refines ErrPreconditionUnmet: no basis functions registered.
	ErrNoBasis = fmt.Errorf("%w: no basis functions", ErrPreconditionUnmet)

	// ErrNoData refines ErrPreconditionUnmet: no data points registered.
	ErrNoData = fmt.Errorf("%w: no data points", ErrPreconditionUnmet)
)

// lsqErrorf tags err with the failing operation, keeping it reachable via %w.
func lsqErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
