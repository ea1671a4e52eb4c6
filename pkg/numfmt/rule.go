package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Rule renders a float64 for display.
type Rule interface {
	// Format renders v or reports why it cannot be rendered.
	Format(v float64) (string, error)
	// DecimalSeparator is used to build the fallback value when Format fails.
	// An empty separator means ",".
	DecimalSeparator() string
}

// FractionDigitsLimit caps fraction-digit bounds. The exact decimal expansion
// of any float64 has at most 1074 fraction digits.
const FractionDigitsLimit = 1074

// NumberRule describes a decimal rendering with fixed separators.
// The zero value renders integers without grouping.
type NumberRule struct {
	MinFractionDigits int
	MaxFractionDigits int
	Grouping          string
	Decimal           string
	GroupSize         int
}

// DefaultNumberRule is the triad rule: space grouping, comma decimals, two
// fraction digits.
var DefaultNumberRule = NumberRule{
	MinFractionDigits: 2,
	MaxFractionDigits: 2,
	Grouping:          " ",
	Decimal:           ",",
	GroupSize:         3,
}

// cleanRule renders the dot-decimal wire format.
var cleanRule = NumberRule{
	MinFractionDigits: 2,
	MaxFractionDigits: 2,
	Decimal:           ".",
}

// WithFractionDigits returns a copy of r with new fraction-digit bounds.
func (r NumberRule) WithFractionDigits(minDigits, maxDigits int) NumberRule {
	r.MinFractionDigits = minDigits
	r.MaxFractionDigits = maxDigits
	return r
}

// WithSeparators returns a copy of r with new grouping and decimal separators.
func (r NumberRule) WithSeparators(grouping, decimalSep string) NumberRule {
	r.Grouping = grouping
	r.Decimal = decimalSep
	return r
}

// DecimalSeparator returns the separator between the integer and fraction parts.
func (r NumberRule) DecimalSeparator() string {
	return r.Decimal
}

// Format rounds v half-to-even at MaxFractionDigits, drops trailing zeros down
// to MinFractionDigits and groups the integer part every GroupSize digits.
func (r NumberRule) Format(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}

	minDigits, maxDigits := fractionBounds(r.MinFractionDigits, r.MaxFractionDigits)
	fixed := decimal.NewFromFloat(v).StringFixedBank(int32(maxDigits))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")
	for len(frac) > minDigits && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(group(intPart, r.GroupSize, r.Grouping))
	if frac != "" {
		b.WriteString(r.Decimal)
		b.WriteString(frac)
	}
	return b.String(), nil
}

// group inserts sep between every size digits counting from the right.
func group(digits string, size int, sep string) string {
	if size <= 0 || sep == "" || len(digits) <= size {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)/size)*len(sep))
	head := len(digits) % size
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

// fractionBounds clamps bounds into [0, FractionDigitsLimit] and raises max to min.
func fractionBounds(minDigits, maxDigits int) (int, int) {
	minDigits = min(max(minDigits, 0), FractionDigitsLimit)
	maxDigits = min(max(maxDigits, minDigits), FractionDigitsLimit)
	return minDigits, maxDigits
}
