package pattern

import "github.com/dmitrymomot/strkit/pkg/sanitizer"

// LuhnValid reports whether input passes the Luhn checksum. Whitespace is
// ignored; empty input or any other non-digit rune yields false.
func LuhnValid(input string) bool {
	digits := sanitizer.StripWhitespace(input)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
