package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/mask"
)

func newMaskCmd(a *app) *cobra.Command {
	var char string

	cmd := &cobra.Command{
		Use:   "mask RANGE [input...]",
		Short: "Replace a range of characters with a mask character",
		Long: `Mask replaces the runes covered by RANGE with the mask character.

RANGE notation:
  lo..<hi   lo up to but not including hi
  lo...hi   lo through hi
  lo...     lo to the end
  ...hi     start through hi
  ..<hi     start up to but not including hi

The presets "email" and "card" keep the first local character of an
address or the last four digits of a card number.`,
		Example: `  strkit mask 0..<12 4111111111111111
  strkit mask --char '#' email user@example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("char") {
				char = a.cfg.MaskChar
			}
			ch, err := maskRune(char)
			if err != nil {
				return err
			}

			fn, err := maskFunc(args[0], ch)
			if err != nil {
				return err
			}
			return each(cmd, args[1:], func(s string) (string, error) {
				res, err := fn(s)
				if err != nil {
					a.log.Debug("mask failed", logger.InputLength(s), logger.Error(err))
				}
				return res, err
			})
		},
	}

	cmd.Flags().StringVarP(&char, "char", "c", "*", "mask character (env STRKIT_MASK_CHAR)")
	return cmd
}

func maskRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaskChar, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func maskFunc(notation string, ch rune) (func(string) (string, error), error) {
	switch notation {
	case "email":
		return func(s string) (string, error) { return mask.MaskEmail(s, ch), nil }, nil
	case "card":
		return func(s string) (string, error) { return mask.MaskCreditCard(s, ch), nil }, nil
	}

	r, err := mask.ParseRange(notation)
	if err != nil {
		return nil, err
	}
	return func(s string) (string, error) { return mask.Mask(s, r, ch) }, nil
}
