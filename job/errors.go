package job

import "errors"

var (
	// ErrUnknownFormat indicates a job file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("job: unknown file format")

	// ErrInvalidJob indicates a job that cannot describe a fit.
	ErrInvalidJob = errors.New("job: invalid job")
)
