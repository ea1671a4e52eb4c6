package numfmt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

const ruleSetYAML = `
rules:
  usd:
    grouping_separator: ","
    decimal_separator: "."
  btc:
    min_fraction_digits: 0
    max_fraction_digits: 8
  plain:
    grouping_separator: ""
    grouping_size: 0
`

func TestLoadRules(t *testing.T) {
	t.Parallel()
	t.Run("fills missing keys with defaults", func(t *testing.T) {
		rules, err := numfmt.LoadRules(strings.NewReader(ruleSetYAML))
		require.NoError(t, err)
		require.Len(t, rules, 3)

		assert.Equal(t, numfmt.NumberRule{
			MinFractionDigits: 2,
			MaxFractionDigits: 2,
			Grouping:          ",",
			Decimal:           ".",
			GroupSize:         3,
		}, rules["usd"])

		assert.Equal(t, numfmt.NumberRule{
			MinFractionDigits: 0,
			MaxFractionDigits: 8,
			Grouping:          " ",
			Decimal:           ",",
			GroupSize:         3,
		}, rules["btc"])

		assert.Equal(t, "", rules["plain"].Grouping)
		assert.Equal(t, 0, rules["plain"].GroupSize)
	})

	t.Run("loaded rule formats", func(t *testing.T) {
		rules, err := numfmt.LoadRules(strings.NewReader(ruleSetYAML))
		require.NoError(t, err)

		assert.Equal(t, "1,234.50", numfmt.Format("1234,5", numfmt.Custom(rules["usd"])))
		assert.Equal(t, "0,00012", numfmt.Format("0.00012", numfmt.Custom(rules["btc"])))
		assert.Equal(t, "1234567,00", numfmt.Format("1234567", numfmt.Custom(rules["plain"])))
	})

	t.Run("empty document", func(t *testing.T) {
		rules, err := numfmt.LoadRules(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := numfmt.LoadRules(strings.NewReader("rules:\n  usd:\n    precision: 2\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, numfmt.ErrInvalidRules)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := numfmt.LoadRules(strings.NewReader("rules: ["))
		require.Error(t, err)
		assert.ErrorIs(t, err, numfmt.ErrInvalidRules)
	})
}

const ruleSetTOML = `
[rules.usd]
grouping_separator = ","
decimal_separator = "."

[rules.btc]
min_fraction_digits = 0
max_fraction_digits = 8
`

func TestLoadRulesTOML(t *testing.T) {
	t.Parallel()
	t.Run("matches yaml decoding", func(t *testing.T) {
		fromTOML, err := numfmt.LoadRulesTOML(strings.NewReader(ruleSetTOML))
		require.NoError(t, err)
		fromYAML, err := numfmt.LoadRules(strings.NewReader(ruleSetYAML))
		require.NoError(t, err)

		require.Len(t, fromTOML, 2)
		assert.Equal(t, fromYAML["usd"], fromTOML["usd"])
		assert.Equal(t, fromYAML["btc"], fromTOML["btc"])
	})

	t.Run("empty document", func(t *testing.T) {
		rules, err := numfmt.LoadRulesTOML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := numfmt.LoadRulesTOML(strings.NewReader("[rules.usd]\nprecision = 2\n"))
		assert.ErrorIs(t, err, numfmt.ErrInvalidRules)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := numfmt.LoadRulesTOML(strings.NewReader("[rules"))
		assert.ErrorIs(t, err, numfmt.ErrInvalidRules)
	})
}

func TestLoadRulesFile(t *testing.T) {
	t.Parallel()
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(ruleSetYAML), 0o600))

		rules, err := numfmt.LoadRulesFile(path)
		require.NoError(t, err)
		assert.Contains(t, rules, "usd")
	})

	t.Run("reads toml by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.toml")
		require.NoError(t, os.WriteFile(path, []byte(ruleSetTOML), 0o600))

		rules, err := numfmt.LoadRulesFile(path)
		require.NoError(t, err)
		assert.Equal(t, ".", rules["usd"].Decimal)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := numfmt.LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
