package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/kairos/internal/engine"
	"github.com/ersinkoc/kairos/internal/rule"
)

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next [date]",
		Short: "Show the next holiday after a date",
		Long: `Show the first holiday strictly after the given YYYY-MM-DD date
(default: today). Scans the date's year, then the following year.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjacent(rootOpts, args, cmd, "next")
		},
	}
	return cmd
}

// NewPrevCommand creates the prev command.
func NewPrevCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prev [date]",
		Short: "Show the last holiday before a date",
		Long: `Show the last holiday strictly before the given YYYY-MM-DD date
(default: today). Scans the date's year, then the preceding year.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjacent(rootOpts, args, cmd, "prev")
		},
	}
	return cmd
}

func runAdjacent(opts *RootOptions, args []string, cmd *cobra.Command, direction string) error {
	formatter := newFormatter(opts, cmd)

	anchor, err := dateArg(args)
	if err != nil {
		return err
	}
	rules, err := opts.ruleSet()
	if err != nil {
		return err
	}

	eng := engine.New()
	var info *rule.HolidayInfo
	if direction == "next" {
		info, err = eng.NextHoliday(anchor, rules)
	} else {
		info, err = eng.PreviousHoliday(anchor, rules)
	}
	if err != nil {
		return reportRuleError(formatter, err)
	}

	if opts.Format == "json" {
		if err := formatter.JSON(row(info)); err != nil {
			return err
		}
		if info == nil {
			return NewExitError(ExitFailure, "no holiday found")
		}
		return nil
	}

	if info == nil {
		fmt.Fprintf(formatter.Writer, "no holiday found near %s\n",
			anchor.Format("2006-01-02"))
		return NewExitError(ExitFailure, "no holiday found")
	}
	fmt.Fprintln(formatter.Writer, formatOccurrence(info))
	return nil
}
