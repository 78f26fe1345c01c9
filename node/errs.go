package node

import "errors"

var (
	// ErrInvalidPointer reports pointer syntax errors: a missing leading
	// slash, or a list segment that is not a plain decimal index.
	ErrInvalidPointer = errors.New("invalid pointer")

	// ErrConvert reports a Go value that has no document representation.
	ErrConvert = errors.New("unconvertible value")
)
