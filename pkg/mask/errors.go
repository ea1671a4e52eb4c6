package mask

import "errors"

var (
	// ErrOutOfBounds is returned when a range reaches past the end of the input.
	ErrOutOfBounds = errors.New("mask: range out of bounds")

	// ErrInvalidRange is returned for negative or reversed bounds and unknown shapes.
	ErrInvalidRange = errors.New("mask: invalid range")

	// ErrInvalidNotation is returned by ParseRange for text that is not a range.
	ErrInvalidNotation = errors.New("mask: invalid range notation")
)
