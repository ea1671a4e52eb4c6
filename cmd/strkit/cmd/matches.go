package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/pattern"
)

func newMatchesCmd(a *app) *cobra.Command {
	var caseSensitive, multiline, dotAll, literal bool

	cmd := &cobra.Command{
		Use:     "matches REGEX [input...]",
		Short:   "Print every match of a regular expression, one per line",
		Example: `  strkit matches '\d+' "order 17 shipped in 3 days"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := pattern.DefaultFlags
			if caseSensitive {
				flags &^= pattern.CaseInsensitive
			}
			if multiline {
				flags |= pattern.Multiline
			}
			if dotAll {
				flags |= pattern.DotMatchesNewline
			}
			if literal {
				flags |= pattern.IgnoreMetacharacters
			}

			in, err := inputs(cmd, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range in {
				for _, m := range pattern.Matches(s, args[0], pattern.WithFlags(flags), pattern.WithLogger(a.log)) {
					fmt.Fprintln(out, m)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match letter case exactly")
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "let ^ and $ match at line breaks")
	cmd.Flags().BoolVarP(&dotAll, "dotall", "s", false, "let . match a newline")
	cmd.Flags().BoolVar(&literal, "literal", false, "treat REGEX as plain text")
	return cmd
}
