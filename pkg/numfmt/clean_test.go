package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func TestClean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		opts     []numfmt.CleanOption
		expected string
	}{
		{
			name:     "grouped value with comma decimals",
			input:    "1 234,56",
			expected: "1234.56",
		},
		{
			name:     "integer gets two fraction digits",
			input:    "1 234",
			expected: "1234.00",
		},
		{
			name:     "pads single fraction digit",
			input:    "  12,3  ",
			expected: "12.30",
		},
		{
			name:     "already clean value",
			input:    "1234.56",
			expected: "1234.56",
		},
		{
			name:     "negative value",
			input:    "-1 234,5",
			expected: "-1234.50",
		},
		{
			name:     "not a number",
			input:    "abc",
			expected: "0.00",
		},
		{
			name:     "infinity cleans to zero",
			input:    "inf",
			expected: "0.00",
		},
		{
			name:     "zero fraction digits",
			input:    "nan",
			opts:     []numfmt.CleanOption{numfmt.WithFractionDigits(0, 0)},
			expected: "0",
		},
		{
			name:     "custom fraction digits",
			input:    "1 234,5678",
			opts:     []numfmt.CleanOption{numfmt.WithFractionDigits(0, 4)},
			expected: "1234.5678",
		},
		{
			name:     "custom fraction digits trims zeros to min",
			input:    "1 234,50",
			opts:     []numfmt.CleanOption{numfmt.WithFractionDigits(0, 4)},
			expected: "1234.5",
		},
		{
			name:  "anglo separators",
			input: "1,234.56",
			opts: []numfmt.CleanOption{
				numfmt.WithGroupingSeparator(","),
				numfmt.WithDecimalSeparator("."),
			},
			expected: "1234.56",
		},
		{
			name:  "continental separators",
			input: "1.234.567,8",
			opts: []numfmt.CleanOption{
				numfmt.WithGroupingSeparator("."),
				numfmt.WithDecimalSeparator(","),
			},
			expected: "1234567.80",
		},
		{
			name:     "empty grouping separator",
			input:    "1234,5",
			opts:     []numfmt.CleanOption{numfmt.WithGroupingSeparator("")},
			expected: "1234.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numfmt.Clean(tt.input, tt.opts...))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"1 234,56",
		"1 234",
		"-0,5",
		"abc",
		"1234567.891",
		"0,125",
		"NaN",
		"inf",
		"-Infinity",
		"1e400",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := numfmt.Clean(input)
			assert.Equal(t, once, numfmt.Clean(once))
		})
	}
}

func TestClean_RoundTripsSum(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"1234",
		"1234567.891",
		"-1234,5",
		"0,5",
		"999999999,99",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			display := numfmt.Format(input, numfmt.Sum(2, 2))
			assert.Equal(t, numfmt.Clean(input), numfmt.Clean(display))
		})
	}
}
