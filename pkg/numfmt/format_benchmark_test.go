package numfmt_test

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func BenchmarkFormat(b *testing.B) {
	specs := []numfmt.Spec{
		numfmt.Sum(2, 2),
		numfmt.CreditCard(),
		numfmt.Custom(numfmt.LocaleRule{Tag: language.German, MinFractionDigits: 2, MaxFractionDigits: 2}),
	}

	for _, spec := range specs {
		b.Run(spec.String(), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = numfmt.Format("1234567,891", spec)
			}
		})
	}
}

func BenchmarkClean(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_ = numfmt.Clean("1 234 567,89")
	}
}
