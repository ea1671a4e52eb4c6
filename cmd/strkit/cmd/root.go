package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/config"
	"github.com/dmitrymomot/strkit/pkg/logger"
)

// Config holds the defaults the CLI reads from the environment. Flags given on
// the command line take precedence.
type Config struct {
	MinFractionDigits int    `env:"STRKIT_MIN_FRACTION_DIGITS" envDefault:"2"`
	MaxFractionDigits int    `env:"STRKIT_MAX_FRACTION_DIGITS" envDefault:"2"`
	GroupingSeparator string `env:"STRKIT_GROUPING_SEPARATOR" envDefault:" "`
	DecimalSeparator  string `env:"STRKIT_DECIMAL_SEPARATOR" envDefault:","`
	MaskChar          string `env:"STRKIT_MASK_CHAR" envDefault:"*"`
	RulesFile         string `env:"STRKIT_RULES_FILE"`
	Locale            string `env:"STRKIT_LOCALE"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"text"`
}

// app is the state shared by every subcommand of one root command.
type app struct {
	cfg     Config
	log     *slog.Logger
	envFile string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.Default()}

	root := &cobra.Command{
		Use:   "strkit",
		Short: "String formatting, masking and validation helpers",
		Long: `strkit formats numeric strings, masks substrings and validates input
with regular expressions and Luhn checksums.

Input is taken from the positional arguments joined by spaces or, when
none are given, from standard input one line at a time.

Defaults come from STRKIT_* environment variables or a .env file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "extra .env file to load before reading the environment")

	root.AddCommand(
		newFormatCmd(a),
		newCleanCmd(a),
		newRoundCmd(a),
		newMaskCmd(a),
		newValidateCmd(a),
		newMatchesCmd(a),
		newLuhnCmd(a),
		newQueryCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the strkit command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(envFiles(a.envFile)...); err != nil {
		return err
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	format := logger.Format(strings.ToLower(a.cfg.LogFormat))
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, a.cfg.LogFormat)
	}

	level, ok := logger.ParseLevel(a.cfg.LogLevel)
	a.log = logger.New(
		logger.WithCLI(cmd.Root().Name()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("sub", cmd.Name())),
	)
	if !ok {
		a.log.Warn("unknown log level, using info", slog.String("level", a.cfg.LogLevel))
	}
	return nil
}

func envFiles(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path}
}

// inputs returns the joined arguments, or the lines of stdin when args is empty.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoInput
	}
	return lines, nil
}

// each applies fn to every input and prints one result per line.
func each(cmd *cobra.Command, args []string, fn func(string) (string, error)) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range in {
		res, err := fn(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res)
	}
	return nil
}

// fractionDigits resolves --min/--max against the configured defaults.
func (a *app) fractionDigits(cmd *cobra.Command, minDigits, maxDigits int) (int, int) {
	if !cmd.Flags().Changed("min") {
		minDigits = a.cfg.MinFractionDigits
	}
	if !cmd.Flags().Changed("max") {
		maxDigits = a.cfg.MaxFractionDigits
	}
	return minDigits, maxDigits
}

func addFractionFlags(cmd *cobra.Command, minDigits, maxDigits *int) {
	cmd.Flags().IntVar(minDigits, "min", 2, "minimum fraction digits (env STRKIT_MIN_FRACTION_DIGITS)")
	cmd.Flags().IntVar(maxDigits, "max", 2, "maximum fraction digits (env STRKIT_MAX_FRACTION_DIGITS)")
}
