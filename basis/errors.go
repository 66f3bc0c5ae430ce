package basis

import "errors"

var (
	// ErrInvalidParameter indicates a negative polynomial degree, a negative
	// maximum frequency, or a non-finite exponential rate.
	ErrInvalidParameter = errors.New("basis: invalid parameter")

	// ErrUnknownKind indicates a term string whose kind tag is not recognised.
	ErrUnknownKind = errors.New("basis: unknown kind")

	// ErrBadTerm indicates a term string that is not of the form "kind:param".
	ErrBadTerm = errors.New("basis: malformed term")
)
