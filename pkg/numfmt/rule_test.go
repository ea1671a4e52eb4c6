package numfmt_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func TestNumberRule_Format(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		rule     numfmt.NumberRule
		value    float64
		expected string
	}{
		{
			name:     "default rule",
			rule:     numfmt.DefaultNumberRule,
			value:    1234567.5,
			expected: "1 234 567,50",
		},
		{
			name:     "zero value rule renders integer",
			rule:     numfmt.NumberRule{},
			value:    1234567.5,
			expected: "1234568",
		},
		{
			name:     "indian style group size two",
			rule:     numfmt.NumberRule{Grouping: ",", Decimal: ".", GroupSize: 2},
			value:    1234567,
			expected: "1,23,45,67",
		},
		{
			name:     "multi-rune separators",
			rule:     numfmt.NumberRule{MaxFractionDigits: 1, Grouping: "'", Decimal: "·", GroupSize: 3},
			value:    9876.54,
			expected: "9'876·5",
		},
		{
			name:     "rounding to zero drops sign",
			rule:     numfmt.DefaultNumberRule,
			value:    -0.001,
			expected: "0,00",
		},
		{
			name:     "large value",
			rule:     numfmt.DefaultNumberRule.WithFractionDigits(0, 0),
			value:    1e15,
			expected: "1 000 000 000 000 000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.rule.Format(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNumberRule_FormatNotFinite(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := numfmt.DefaultNumberRule.Format(v)
		assert.ErrorIs(t, err, numfmt.ErrNotFinite)
	}
}

func TestNumberRule_FractionDigitsLimit(t *testing.T) {
	t.Parallel()

	t.Run("huge max keeps the value", func(t *testing.T) {
		out, err := numfmt.DefaultNumberRule.WithFractionDigits(0, 1<<33).Format(1.5)
		require.NoError(t, err)
		assert.Equal(t, "1,5", out)
	})

	t.Run("huge min is capped", func(t *testing.T) {
		out, err := numfmt.DefaultNumberRule.WithFractionDigits(1<<33, 0).Format(1)
		require.NoError(t, err)
		assert.Equal(t, "1,"+strings.Repeat("0", numfmt.FractionDigitsLimit), out)
	})

	t.Run("sum spec", func(t *testing.T) {
		assert.Equal(t, "1,5", numfmt.Format("1.5", numfmt.Sum(0, 1<<33)))
	})
}

func TestNumberRule_WithHelpersReturnCopies(t *testing.T) {
	t.Parallel()
	base := numfmt.DefaultNumberRule
	changed := base.WithFractionDigits(0, 4).WithSeparators(",", ".")

	assert.Equal(t, 2, numfmt.DefaultNumberRule.MinFractionDigits)
	assert.Equal(t, " ", numfmt.DefaultNumberRule.Grouping)
	assert.Equal(t, 4, changed.MaxFractionDigits)
	assert.Equal(t, ".", changed.DecimalSeparator())
}

func TestNumberRule_ConcurrentUse(t *testing.T) {
	t.Parallel()
	shared := numfmt.DefaultNumberRule

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			digits := i % 4
			results[i], _ = shared.WithFractionDigits(digits, digits).Format(1.5)
		}(i)
	}
	wg.Wait()

	expected := []string{"2", "1,5", "1,50", "1,500"}
	for i, got := range results {
		assert.Equal(t, expected[i%4], got)
	}
}
