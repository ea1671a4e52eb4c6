package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/pattern"
)

func newQueryCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:     "query URL",
		Short:   "Print the query parameters of an http(s) URL as key=value lines",
		Example: `  strkit query "https://test.com?foo=1&bar=abc"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, ok := pattern.QueryItems(args[0])
			if !ok {
				return fmt.Errorf("not an http(s) URL: %q", args[0])
			}
			out := cmd.OutOrStdout()
			for _, k := range slices.Sorted(maps.Keys(items)) {
				fmt.Fprintf(out, "%s=%s\n", k, items[k])
			}
			return nil
		},
	}
}
