package segment

import "errors"

// Errors returned by segment map operations.
var (
	// ErrInvalidBounds indicates a cut, patch or slice span that is not
	// contained in the source map.
	ErrInvalidBounds = errors.New("invalid segment bounds")

	// ErrCorruptMap indicates a map that violates the partition invariants.
	ErrCorruptMap = errors.New("corrupt segment map")
)
