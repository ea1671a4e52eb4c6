package numfmt

import (
	"strings"

	"github.com/dmitrymomot/strkit/pkg/sanitizer"
)

// CleanOption configures Clean.
type CleanOption func(*cleanConfig)

type cleanConfig struct {
	minDigits int
	maxDigits int
	grouping  string
	decimal   string
}

// WithFractionDigits sets the fraction-digit bounds of the cleaned value. Defaults to 2 and 2.
func WithFractionDigits(minDigits, maxDigits int) CleanOption {
	return func(c *cleanConfig) {
		c.minDigits = minDigits
		c.maxDigits = maxDigits
	}
}

// WithGroupingSeparator sets the separator removed from the input. Defaults to " ".
func WithGroupingSeparator(sep string) CleanOption {
	return func(c *cleanConfig) { c.grouping = sep }
}

// WithDecimalSeparator sets the separator replaced by a dot. Defaults to ",".
func WithDecimalSeparator(sep string) CleanOption {
	return func(c *cleanConfig) { c.decimal = sep }
}

// Clean converts a display rendering such as "1 234,56" into the dot-decimal
// form "1234.56" with no grouping. Input that is not a number cleans to "0.00"
// under the default options.
func Clean(input string, opts ...CleanOption) string {
	cfg := cleanConfig{
		minDigits: cleanRule.MinFractionDigits,
		maxDigits: cleanRule.MaxFractionDigits,
		grouping:  " ",
		decimal:   ",",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := sanitizer.Trim(input)
	if cfg.grouping != "" {
		s = strings.ReplaceAll(s, cfg.grouping, "")
	}
	if cfg.decimal != "" {
		s = strings.ReplaceAll(s, cfg.decimal, ".")
	}

	rule := cleanRule.WithFractionDigits(cfg.minDigits, cfg.maxDigits)
	out, err := rule.Format(ToDouble(s))
	if err != nil {
		out, _ = rule.Format(0)
	}
	return out
}
