package validator

import (
	"github.com/dmitrymomot/strkit/pkg/pattern"
	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// ValidEmail validates value against the pattern.Email expression.
func ValidEmail(field, value string) Rule {
	return kindRule(field, value, pattern.Email, "must be a valid email address", "validation.email")
}

// ValidPhone validates value against the pattern.PhoneBY expression:
// a "+" followed by 1 to 12 digits, nothing else.
func ValidPhone(field, value string) Rule {
	return kindRule(field, value, pattern.PhoneBY, "must be a valid phone number in international format", "validation.phone")
}

// ValidWebsite validates that value contains a website address.
func ValidWebsite(field, value string) Rule {
	return kindRule(field, value, pattern.Website, "must be a valid website address", "validation.website")
}

// MatchesPattern validates value against an arbitrary pattern kind. Empty
// values fail. An expression that does not compile fails every value.
func MatchesPattern(field, value string, kind pattern.Kind, opts ...pattern.Option) Rule {
	return Rule{
		Check: func() bool {
			if sanitizer.Trim(value) == "" {
				return false
			}
			return pattern.Validate(value, kind, opts...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + kind.String() + " pattern",
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"kind":    kind.String(),
				"pattern": kind.Source(),
			},
		},
	}
}

func kindRule(field, value string, kind pattern.Kind, message, key string) Rule {
	return Rule{
		Check: func() bool {
			if sanitizer.Trim(value) == "" {
				return false
			}
			return pattern.Validate(value, kind)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
