package strkit

import (
	"github.com/dmitrymomot/strkit/pkg/mask"
	"github.com/dmitrymomot/strkit/pkg/numfmt"
	"github.com/dmitrymomot/strkit/pkg/pattern"
)

// ToDouble parses a numeric string that may use a comma decimal separator and
// whitespace grouping. Unparsable input yields 0.
func ToDouble(input string) float64 {
	return numfmt.ToDouble(input)
}

// Format renders input according to spec. A nil spec formats as numfmt.Sum(2, 2).
func Format(input string, spec numfmt.Spec) string {
	return numfmt.Format(input, spec)
}

// Clean converts a formatted number back to dot-decimal form without grouping.
func Clean(input string, opts ...numfmt.CleanOption) string {
	return numfmt.Clean(input, opts...)
}

// Mask replaces the runes of input covered by r with ch.
func Mask(input string, r mask.Range, ch rune) (string, error) {
	return mask.Mask(input, r, ch)
}

// Validate reports whether input matches kind.
func Validate(input string, kind pattern.Kind, opts ...pattern.Option) bool {
	return pattern.Validate(input, kind, opts...)
}

// Matches returns every non-overlapping match of raw in input.
func Matches(input, raw string, opts ...pattern.Option) []string {
	return pattern.Matches(input, raw, opts...)
}

// LuhnValid reports whether input passes the Luhn checksum.
func LuhnValid(input string) bool {
	return pattern.LuhnValid(input)
}
