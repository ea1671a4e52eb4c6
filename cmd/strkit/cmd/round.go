package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/numfmt"
)

func newRoundCmd(_ *app) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:     "round [input...]",
		Short:   "Round a number, halves away from zero",
		Example: `  strkit round --precision 1 2,45`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(s string) (string, error) {
				v, err := numfmt.ParseDouble(s)
				if err != nil {
					return "", err
				}
				return strconv.FormatFloat(numfmt.Round(v, precision), 'f', -1, 64), nil
			})
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", 2, "decimal places; negative rounds to tens, hundreds and so on")
	return cmd
}
