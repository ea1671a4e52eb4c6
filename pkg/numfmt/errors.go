package numfmt

import "errors"

var (
	// ErrNotNumeric is returned by ParseDouble when the normalized input is not a number.
	ErrNotNumeric = errors.New("numfmt: not a number")

	// ErrNotFinite is returned by rules asked to render NaN or an infinity.
	ErrNotFinite = errors.New("numfmt: value is not finite")

	// ErrUnknownLocale is returned when a locale tag cannot be parsed.
	ErrUnknownLocale = errors.New("numfmt: unknown locale")

	// ErrInvalidRules is returned when a rule set document cannot be decoded.
	ErrInvalidRules = errors.New("numfmt: invalid rule set")
)
