package sanitizer

import (
	"strconv"
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace and new lines from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripWhitespace removes every Unicode white-space rune, including the
// no-break and narrow no-break spaces used as grouping separators by many locales.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeWhitespace prevents layout issues from multiple spaces, tabs, and newlines.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// Digits keeps only decimal digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// HasOnlyDigits reports whether s is non-empty and every rune is a number.
func HasOnlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// ToInt parses s as a base-10 integer, returning 0 when it is not one.
// No trimming is done: " 42" yields 0.
func ToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Separate inserts sep before every rune whose index is a positive multiple of
// every, counting from the first rune. A non-positive every returns s unchanged.
func Separate(s string, every int, sep rune) string {
	if every <= 0 || s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/every)
	i := 0
	for _, r := range s {
		if i > 0 && i%every == 0 {
			b.WriteRune(sep)
		}
		b.WriteRune(r)
		i++
	}

	return b.String()
}

// Substring returns the runes in [start, end). The second result is false when
// the bounds do not describe a valid span of s.
func Substring(s string, start, end int) (string, bool) {
	runes := []rune(s)
	if start < 0 || end < start || end > len(runes) {
		return "", false
	}
	return string(runes[start:end]), true
}
