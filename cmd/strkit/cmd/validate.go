package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/pattern"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		kindName      string
		regex         string
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "validate [input...]",
		Short: "Check input against a predefined or custom pattern",
		Example: `  strkit validate --kind email user@example.com
  strkit validate --regex '^\d{4}$' 2024`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := pattern.Custom(regex)
			if kindName != "" {
				k, err := pattern.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}

			opts := []pattern.Option{pattern.WithLogger(a.log)}
			if caseSensitive {
				opts = append(opts, pattern.CaseSensitive())
			}
			return each(cmd, args, func(s string) (string, error) {
				return strconv.FormatBool(pattern.Validate(s, kind, opts...)), nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "predefined pattern: email, phone or website")
	cmd.Flags().StringVarP(&regex, "regex", "r", "", "custom regular expression")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match letter case exactly")
	cmd.MarkFlagsMutuallyExclusive("kind", "regex")
	cmd.MarkFlagsOneRequired("kind", "regex")
	return cmd
}
