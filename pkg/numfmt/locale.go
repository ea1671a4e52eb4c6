package numfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleRule renders numbers with the separators and digits of a language tag.
type LocaleRule struct {
	Tag               language.Tag
	MinFractionDigits int
	MaxFractionDigits int
}

// NewLocaleRule parses locale as a BCP 47 tag.
func NewLocaleRule(locale string, minDigits, maxDigits int) (LocaleRule, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return LocaleRule{}, fmt.Errorf("%w: %q: %w", ErrUnknownLocale, locale, err)
	}
	return LocaleRule{Tag: tag, MinFractionDigits: minDigits, MaxFractionDigits: maxDigits}, nil
}

// WithFractionDigits returns a copy of r with new fraction-digit bounds.
func (r LocaleRule) WithFractionDigits(minDigits, maxDigits int) LocaleRule {
	r.MinFractionDigits = minDigits
	r.MaxFractionDigits = maxDigits
	return r
}

// Format builds a fresh printer on every call; printers are not shared.
func (r LocaleRule) Format(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}

	minDigits, maxDigits := fractionBounds(r.MinFractionDigits, r.MaxFractionDigits)
	p := message.NewPrinter(r.Tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	)), nil
}

// DecimalSeparator renders 1.5 in the locale and keeps the separator.
func (r LocaleRule) DecimalSeparator() string {
	p := message.NewPrinter(r.Tag)
	sample := p.Sprint(number.Decimal(1.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
	return strings.TrimFunc(sample, unicode.IsDigit)
}
