// Package numfmt turns loosely written numeric strings into display strings and
// back into machine-readable ones.
//
// Three entry points cover the common cases:
//
//   - ToDouble parses user input such as "1 234,56" leniently. Anything that
//     does not parse yields zero instead of an error.
//   - Format renders input according to a Spec: triad sums ("1 234,00"),
//     credit-card or IBAN grouping ("1234 5678 9012 3456") or a caller supplied
//     Rule.
//   - Clean reverses a display rendering into the dot-decimal wire form used in
//     API payloads ("1 234,56" → "1234.56").
//
// # Rules
//
// A Rule renders a float64. NumberRule is a plain value describing separators
// and fraction-digit bounds; it is rendered with github.com/shopspring/decimal
// using banker's rounding. LocaleRule delegates to golang.org/x/text so that
// separators follow CLDR data for a language tag. Rules are immutable: the
// With* helpers return modified copies, so a rule shared between goroutines is
// never reconfigured in place.
//
// Named NumberRule sets can be loaded from YAML with LoadRules:
//
//	rules:
//	  usd:
//	    min_fraction_digits: 2
//	    max_fraction_digits: 2
//	    grouping_separator: ","
//	    decimal_separator: "."
//
// LoadRulesTOML reads the same structure from TOML and LoadRulesFile picks the
// decoder by file extension.
//
// # Usage
//
//	numfmt.Format("1234", numfmt.Sum(2, 2))              // "1 234,00"
//	numfmt.Format("1234567890123456", numfmt.CreditCard()) // "1234 5678 9012 3456"
//	numfmt.Clean("1 234")                                  // "1234.00"
//
// # Error handling
//
// Formatting is fail-soft. ParseDouble rejects NaN and infinities, so ToDouble
// maps them to zero like any other unparsable text. Format falls back to "0,00"
// (or "0" + the rule's decimal separator + "00" for custom rules) when a rule
// fails, and Clean renders zero with the configured fraction digits.
package numfmt
