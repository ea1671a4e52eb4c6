package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// ParseDouble normalizes s and parses it as a float64. White space anywhere in
// the string is dropped and every comma becomes a dot, so "1 234,56" parses as
// 1234.56 while "1,234,56" does not parse at all. "NaN", "Inf" and values
// that overflow float64 are rejected.
func ParseDouble(s string) (float64, error) {
	normalized := strings.ReplaceAll(sanitizer.StripWhitespace(s), ",", ".")

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}

// ToDouble is the fail-soft form of ParseDouble: unparsable, non-finite or
// overflowing input yields zero.
func ToDouble(s string) float64 {
	v, err := ParseDouble(s)
	if err != nil {
		return 0
	}
	return v
}

// Round rounds value to precision decimal places, halves away from zero.
// A negative precision rounds to tens, hundreds and so on.
func Round[T Float](value T, precision int) T {
	multiplier := math.Pow(10, float64(precision))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}
