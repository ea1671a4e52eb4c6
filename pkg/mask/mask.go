package mask

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// Mask replaces every rune of s covered by r with ch. The result has the same
// number of runes as s. Bytes outside the span are copied unchanged, and each
// invalid UTF-8 byte counts as one rune. When r does not fit s the error wraps
// ErrOutOfBounds or ErrInvalidRange and the returned string is empty.
func Mask(s string, r Range, ch rune) (string, error) {
	start, end, err := r.Span(utf8.RuneCountInString(s))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, idx := 0, 0; i < len(s); idx++ {
		_, w := utf8.DecodeRuneInString(s[i:])
		if idx >= start && idx < end {
			b.WriteRune(ch)
		} else {
			b.WriteString(s[i : i+w])
		}
		i += w
	}
	return b.String(), nil
}

// Fits reports whether r can be applied to s.
func Fits(s string, r Range) bool {
	_, _, err := r.Span(utf8.RuneCountInString(s))
	return err == nil
}

// MaskEdges preserves visible runes at both ends for user recognition while
// hiding the middle. Strings too short to keep both edges are masked entirely.
func MaskEdges(s string, visible int, ch rune) string {
	if visible < 0 {
		visible = 1
	}

	n := len([]rune(s))
	if n <= visible*2 {
		return strings.Repeat(string(ch), n)
	}

	masked, _ := Mask(s, Bounded(visible, n-visible), ch)
	return masked
}

// MaskTail keeps the last visible runes. Shorter strings are masked entirely.
func MaskTail(s string, visible int, ch rune) string {
	n := len([]rune(s))
	if visible < 0 || n < visible {
		return strings.Repeat(string(ch), n)
	}

	masked, _ := Mask(s, UpTo(n-visible), ch)
	return masked
}

// MaskEmail keeps the first rune of the local part and the full domain.
// Input that is not a single-@ address is returned trimmed but unmasked.
func MaskEmail(email string, ch rune) string {
	email = sanitizer.Trim(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}

	if len([]rune(local)) == 1 {
		return string(ch) + "@" + domain
	}

	masked, _ := Mask(local, From(1), ch)
	return masked + "@" + domain
}

// MaskCreditCard follows the PCI DSS display rule of showing only the last four
// digits, grouped by four: "**** **** **** 3456".
func MaskCreditCard(number string, ch rune) string {
	digits := sanitizer.Digits(number)
	return sanitizer.Separate(MaskTail(digits, 4, ch), 4, ' ')
}
