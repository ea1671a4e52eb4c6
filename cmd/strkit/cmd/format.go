package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

type formatOptions struct {
	spec      string
	minDigits int
	maxDigits int
	rule      string
	rulesFile string
	locale    string
}

func newFormatCmd(a *app) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [input...]",
		Short: "Format a numeric string",
		Long: `Format renders input according to a spec:

  sum     triad grouping with a comma decimal: "1 234,50"
  card    a space every four characters: "1234 5678 9012 3456"
  iban    same grouping as card
  rule    a named number rule from a YAML or TOML rules file
  locale  the separators of a BCP 47 language tag`,
		Example: `  strkit format 1234.5
  strkit format --spec card 1234567890123456
  strkit format --spec locale --locale de 1234.5
  strkit format --spec rule --rules rules.yaml --rule usd 1234.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.formatSpec(cmd, opts)
			if err != nil {
				return err
			}
			return each(cmd, args, func(s string) (string, error) {
				a.log.Debug("format", logger.Spec(spec.String()), logger.InputLength(s))
				return numfmt.Format(s, spec), nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.spec, "spec", "sum", "format spec: sum, card, iban, rule or locale")
	addFractionFlags(cmd, &opts.minDigits, &opts.maxDigits)
	cmd.Flags().StringVar(&opts.rule, "rule", "", "rule name for --spec rule")
	cmd.Flags().StringVar(&opts.rulesFile, "rules", "", "YAML or TOML rules file (env STRKIT_RULES_FILE)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "language tag for --spec locale (env STRKIT_LOCALE)")
	return cmd
}

func (a *app) formatSpec(cmd *cobra.Command, opts *formatOptions) (numfmt.Spec, error) {
	minDigits, maxDigits := a.fractionDigits(cmd, opts.minDigits, opts.maxDigits)

	switch opts.spec {
	case "sum":
		return numfmt.Sum(minDigits, maxDigits), nil
	case "card":
		return numfmt.CreditCard(), nil
	case "iban":
		return numfmt.IBAN(), nil
	case "rule":
		rule, err := a.namedRule(opts)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
			rule = rule.WithFractionDigits(minDigits, maxDigits)
		}
		return numfmt.Custom(rule), nil
	case "locale":
		locale := opts.locale
		if locale == "" {
			locale = a.cfg.Locale
		}
		if locale == "" {
			return nil, ErrMissingLocale
		}
		rule, err := numfmt.NewLocaleRule(locale, minDigits, maxDigits)
		if err != nil {
			return nil, err
		}
		return numfmt.Custom(rule), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpec, opts.spec)
	}
}

func (a *app) namedRule(opts *formatOptions) (numfmt.NumberRule, error) {
	path := opts.rulesFile
	if path == "" {
		path = a.cfg.RulesFile
	}
	if path == "" {
		return numfmt.NumberRule{}, ErrMissingRules
	}

	rules, err := numfmt.LoadRulesFile(path)
	if err != nil {
		return numfmt.NumberRule{}, err
	}
	rule, ok := rules[opts.rule]
	if !ok {
		return numfmt.NumberRule{}, fmt.Errorf("%w: %q in %s", ErrUnknownRule, opts.rule, path)
	}
	return rule, nil
}
