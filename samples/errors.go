package samples

import "errors"

var (
	// ErrInvalidCount indicates a non-positive number of samples.
	ErrInvalidCount = errors.New("samples: sample count must be > 0")

	// ErrNilFunction indicates a nil function was passed for sampling.
	ErrNilFunction = errors.New("samples: function is nil")
)
