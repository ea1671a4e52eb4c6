package pattern

import "errors"

var (
	// ErrEmptyPattern is returned by Compile for an empty expression.
	ErrEmptyPattern = errors.New("pattern: empty expression")

	// ErrUnknownKind is returned by ParseKind for names it does not recognize.
	ErrUnknownKind = errors.New("pattern: unknown kind")
)
