package text

import "errors"

// Errors returned by buffer operations.
var (
	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrIteratorMismatch indicates a comparison or subtraction between
	// iterators of different buffers.
	ErrIteratorMismatch = errors.New("iterators belong to different buffers")

	// ErrPrecondition indicates invalid cut or patch bounds, or a nil
	// buffer, passed to a buffer constructor.
	ErrPrecondition = errors.New("precondition violation")
)
