package numfmt

import (
	"fmt"

	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// defaultValue is returned by Sum when the value cannot be rendered.
const defaultValue = "0,00"

// Spec selects the shape produced by Format.
type Spec interface {
	fmt.Stringer
	apply(input string) string
}

type sumSpec struct {
	rule NumberRule
}

// Sum renders the numeric value of the input in triads: "1 234,50".
// Fraction digits are padded to minFractionDigits and rounded at maxFractionDigits.
func Sum(minFractionDigits, maxFractionDigits int) Spec {
	return sumSpec{rule: DefaultNumberRule.WithFractionDigits(minFractionDigits, maxFractionDigits)}
}

func (s sumSpec) apply(input string) string {
	out, err := s.rule.Format(ToDouble(input))
	if err != nil {
		return defaultValue
	}
	return out
}

func (s sumSpec) String() string {
	return fmt.Sprintf("sum(%d,%d)", s.rule.MinFractionDigits, s.rule.MaxFractionDigits)
}

type groupSpec struct {
	name  string
	every int
}

// CreditCard inserts a space every four characters. The input is not parsed.
func CreditCard() Spec {
	return groupSpec{name: "credit-card", every: 4}
}

// IBAN inserts a space every four characters. The input is not parsed.
func IBAN() Spec {
	return groupSpec{name: "iban", every: 4}
}

func (s groupSpec) apply(input string) string {
	return sanitizer.Separate(input, s.every, ' ')
}

func (s groupSpec) String() string {
	return s.name
}

type customSpec struct {
	rule Rule
}

// Custom hands the numeric value of the input to rule.
func Custom(rule Rule) Spec {
	return customSpec{rule: rule}
}

func (s customSpec) apply(input string) string {
	if s.rule == nil {
		return defaultValue
	}
	out, err := s.rule.Format(ToDouble(input))
	if err != nil {
		sep := s.rule.DecimalSeparator()
		if sep == "" {
			sep = ","
		}
		return "0" + sep + "00"
	}
	return out
}

func (s customSpec) String() string {
	return "custom"
}

// Format renders input according to spec. A nil spec means Sum(2, 2).
func Format(input string, spec Spec) string {
	if spec == nil {
		spec = Sum(2, 2)
	}
	return spec.apply(input)
}
