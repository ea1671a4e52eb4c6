package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func newCleanCmd(a *app) *cobra.Command {
	var (
		minDigits, maxDigits int
		grouping, decimal    string
	)

	cmd := &cobra.Command{
		Use:     "clean [input...]",
		Short:   "Convert a formatted number back to dot-decimal form",
		Example: `  strkit clean "1 234,50"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			minDigits, maxDigits = a.fractionDigits(cmd, minDigits, maxDigits)
			if !cmd.Flags().Changed("grouping") {
				grouping = a.cfg.GroupingSeparator
			}
			if !cmd.Flags().Changed("decimal") {
				decimal = a.cfg.DecimalSeparator
			}

			opts := []numfmt.CleanOption{
				numfmt.WithFractionDigits(minDigits, maxDigits),
				numfmt.WithGroupingSeparator(grouping),
				numfmt.WithDecimalSeparator(decimal),
			}
			return each(cmd, args, func(s string) (string, error) {
				return numfmt.Clean(s, opts...), nil
			})
		},
	}

	addFractionFlags(cmd, &minDigits, &maxDigits)
	cmd.Flags().StringVar(&grouping, "grouping", " ", "grouping separator to remove (env STRKIT_GROUPING_SEPARATOR)")
	cmd.Flags().StringVar(&decimal, "decimal", ",", "decimal separator to replace (env STRKIT_DECIMAL_SEPARATOR)")
	return cmd
}
