// Package strkit collects stateless string helpers: numeric formatting,
// substring masking and pattern validation.
//
// The root package is a flat facade over the packages that do the work:
//
//   - pkg/numfmt formats numeric strings (triad grouping, card and IBAN
//     spacing, custom and locale rules) and cleans them back to dot-decimal.
//   - pkg/mask replaces a range of runes with a mask character.
//   - pkg/pattern validates input against predefined or custom regular
//     expressions and checks Luhn checksums.
//
// Basic usage:
//
//	strkit.Format("1234", numfmt.Sum(2, 2))           // "1 234,00"
//	strkit.Format("1234567890123456", numfmt.CreditCard()) // "1234 5678 9012 3456"
//	strkit.Clean("1 234,56")                          // "1234.56"
//
//	masked, err := strkit.Mask("abcdefg", mask.Bounded(5, 7), '*') // "abcde**"
//
//	strkit.Validate("a@b.com", pattern.Email) // true
//	strkit.LuhnValid("4539148803436467")      // true
//
// Formatting and validation are fail-soft: unparsable numbers format as zero
// and expressions that do not compile never match. Masking is fail-explicit and
// returns an error wrapping mask.ErrOutOfBounds or mask.ErrInvalidRange.
//
// Every function is safe for concurrent use.
package strkit
