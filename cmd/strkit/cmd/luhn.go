package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/pattern"
)

func newLuhnCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:     "luhn [input...]",
		Short:   "Check a card number against the Luhn checksum",
		Example: `  strkit luhn 4111 1111 1111 1111`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(s string) (string, error) {
				return strconv.FormatBool(pattern.LuhnValid(s)), nil
			})
		},
	}
}
