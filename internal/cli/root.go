package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/kairos/internal/locale"
	"github.com/ersinkoc/kairos/internal/rule"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Locale  string // built-in locale identifier
	Rules   string // path to a YAML rule-set file; overrides Locale
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the Kairos CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kairos",
		Short: "Kairos - holiday rule engine",
		Long:  "Compute holiday dates from declarative rules: fixed dates, nth weekdays,\nEaster offsets, lunar calendars, and rules relative to other holidays.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "us", "built-in holiday set (us|de-nw)")
	cmd.PersistentFlags().StringVar(&opts.Rules, "rules", "", "YAML rule-set file (overrides --locale)")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewNextCommand(opts))
	cmd.AddCommand(NewPrevCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ruleSet resolves the rule set from --rules or --locale.
func (opts *RootOptions) ruleSet() ([]*rule.Rule, error) {
	if opts.Rules != "" {
		rules, err := locale.LoadFile(opts.Rules)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "loading rule set", err)
		}
		return rules, nil
	}

	sets := locale.Sets()
	build, ok := sets[strings.ToLower(opts.Locale)]
	if !ok {
		known := make([]string, 0, len(sets))
		for id := range sets {
			known = append(known, id)
		}
		sort.Strings(known)
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown locale %q: known locales are %v", opts.Locale, known))
	}
	return build(), nil
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// parseDate parses a YYYY-MM-DD argument into a calendar date.
func parseDate(arg string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", arg))
	}
	return rule.Date(d.Year(), d.Month(), d.Day()), nil
}

// reportRuleError writes a structured engine error and converts it to a
// failure exit code.
func reportRuleError(formatter *OutputFormatter, err error) error {
	var re *rule.Error
	if errors.As(err, &re) {
		if ferr := formatter.Error(string(re.Code), re.Message, re.Details); ferr != nil {
			return ferr
		}
		return NewExitError(ExitFailure, re.Message)
	}
	return WrapExitError(ExitFailure, "query failed", err)
}
