// Package sanitizer provides the small string primitives shared by the
// formatting, masking and pattern packages of strkit.
//
// The helpers are grouped conceptually into two areas:
//
//   - Whitespace – trimming, stripping every Unicode white-space rune and
//     collapsing runs of white space into single spaces.
//
//   - Digits – extracting decimal digits, checking that a string consists only
//     of numbers, lenient integer parsing and grouping characters into fixed
//     size blocks (credit-card and IBAN display).
//
// All offsets are rune offsets, never byte offsets, so multi-byte input such as
// Cyrillic text or emoji is handled the same way as ASCII.
//
// # Usage
//
//	import "github.com/dmitrymomot/strkit/pkg/sanitizer"
//
//	sanitizer.StripWhitespace(" 1 234,56 ")        // "1234,56"
//	sanitizer.Separate("1234567890123456", 4, ' ') // "1234 5678 9012 3456"
//	sanitizer.Digits("+375 (29) 123-45-67")         // "375291234567"
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe result
// (the original input, an empty string or zero).
//
// The package has no global mutable state and is safe for concurrent use.
package sanitizer
