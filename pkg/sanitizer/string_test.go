package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestStripWhitespace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes grouping spaces",
			input:    " 1 234 567,89 ",
			expected: "1234567,89",
		},
		{
			name:     "removes no-break and narrow no-break spaces",
			input:    "1\u00a0234\u202f567",
			expected: "1234567",
		},
		{
			name:     "removes tabs and newlines",
			input:    "a\tb\nc",
			expected: "abc",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripWhitespace(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", sanitizer.NormalizeWhitespace("  a \t b\n\nc  "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \n "))
}

func TestDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "extracts digits from phone number",
			input:    "+375 (29) 123-45-67",
			expected: "375291234567",
		},
		{
			name:     "returns empty for letters only",
			input:    "abc",
			expected: "",
		},
		{
			name:     "keeps digits only string",
			input:    "0042",
			expected: "0042",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Digits(tt.input))
		})
	}
}

func TestHasOnlyDigits(t *testing.T) {
	t.Parallel()
	assert.True(t, sanitizer.HasOnlyDigits("1234567890"))
	assert.True(t, sanitizer.HasOnlyDigits("٣٤٥"), "arabic-indic digits are numbers")
	assert.False(t, sanitizer.HasOnlyDigits(""))
	assert.False(t, sanitizer.HasOnlyDigits("12 34"))
	assert.False(t, sanitizer.HasOnlyDigits("12.5"))
	assert.False(t, sanitizer.HasOnlyDigits("-12"))
}

func TestToInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected int
	}{
		{"42", 42},
		{"-17", -17},
		{"+8", 8},
		{"", 0},
		{"abc", 0},
		{" 42", 0},
		{"4.2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ToInt(tt.input))
		})
	}
}

func TestSeparate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		every    int
		sep      rune
		expected string
	}{
		{
			name:     "credit card grouping",
			input:    "1234567890123456",
			every:    4,
			sep:      ' ',
			expected: "1234 5678 9012 3456",
		},
		{
			name:     "partial last group",
			input:    "BY13NBRB3600900000002Z00AB00",
			every:    4,
			sep:      ' ',
			expected: "BY13 NBRB 3600 9000 0000 2Z00 AB00",
		},
		{
			name:     "shorter than group",
			input:    "123",
			every:    4,
			sep:      ' ',
			expected: "123",
		},
		{
			name:     "exact group has no trailing separator",
			input:    "1234",
			every:    4,
			sep:      ' ',
			expected: "1234",
		},
		{
			name:     "counts runes not bytes",
			input:    "абвгде",
			every:    2,
			sep:      '-',
			expected: "аб-вг-де",
		},
		{
			name:     "non-positive stride returns input",
			input:    "1234",
			every:    0,
			sep:      ' ',
			expected: "1234",
		},
		{
			name:     "empty input",
			input:    "",
			every:    4,
			sep:      ' ',
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Separate(tt.input, tt.every, tt.sep))
		})
	}
}

func TestSubstring(t *testing.T) {
	t.Parallel()
	t.Run("valid span", func(t *testing.T) {
		s, ok := sanitizer.Substring("привет мир", 7, 10)
		assert.True(t, ok)
		assert.Equal(t, "мир", s)
	})

	t.Run("empty span", func(t *testing.T) {
		s, ok := sanitizer.Substring("abc", 3, 3)
		assert.True(t, ok)
		assert.Equal(t, "", s)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, ok := sanitizer.Substring("abc", 1, 4)
		assert.False(t, ok)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, ok := sanitizer.Substring("abc", 2, 1)
		assert.False(t, ok)
	})

	t.Run("negative start", func(t *testing.T) {
		_, ok := sanitizer.Substring("abc", -1, 1)
		assert.False(t, ok)
	})
}
