package validator

import (
	"math"
	"strings"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
	"github.com/dmitrymomot/strkit/pkg/pattern"
	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// ValidNumericString validates that value parses as a finite decimal number.
// Comma and dot are both accepted as the decimal separator and whitespace
// grouping is ignored, so "1 234,50" passes.
func ValidNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if sanitizer.Trim(value) == "" {
				return false
			}
			v, err := numfmt.ParseDouble(value)
			return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCreditCardChecksum validates a credit card number using the Luhn algorithm.
// Spaces and dashes are ignored; 13 to 19 digits are required.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := strings.ReplaceAll(sanitizer.StripWhitespace(value), "-", "")
			if !sanitizer.HasOnlyDigits(cleaned) {
				return false
			}
			if len(cleaned) < 13 || len(cleaned) > 19 {
				return false
			}
			return pattern.LuhnValid(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
