package validator

import "github.com/dmitrymomot/strkit/pkg/mask"

// ValidMaskRange validates that r can be masked over value.
func ValidMaskRange(field, value string, r mask.Range) Rule {
	return Rule{
		Check: func() bool {
			return mask.Fits(value, r)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "range " + r.String() + " does not fit the value",
			TranslationKey: "validation.mask_range",
			TranslationValues: map[string]any{
				"field": field,
				"range": r.String(),
			},
		},
	}
}
