package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/kairos/internal/engine"
)

// checkResult is the JSON shape for a membership check.
type checkResult struct {
	Date    string      `json:"date"`
	Holiday *holidayRow `json:"holiday"` // nil when the date is not a holiday
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <date>",
		Short: "Check whether a date is a holiday",
		Long: `Check whether a YYYY-MM-DD date falls on a holiday in the rule set.

Rules are checked in list order; the first match wins. Exits 0 when the
date is a holiday and 1 when it is not, so scripts can branch on it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, dateArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	date, err := parseDate(dateArg)
	if err != nil {
		return err
	}
	rules, err := opts.ruleSet()
	if err != nil {
		return err
	}

	eng := engine.New()
	info, err := eng.IsHoliday(date, rules)
	if err != nil {
		return reportRuleError(formatter, err)
	}

	if opts.Format == "json" {
		if err := formatter.JSON(checkResult{Date: dateArg, Holiday: row(info)}); err != nil {
			return err
		}
		if info == nil {
			return NewExitError(ExitFailure, "not a holiday")
		}
		return nil
	}

	if info == nil {
		fmt.Fprintf(formatter.Writer, "%s is not a holiday\n", dateArg)
		return NewExitError(ExitFailure, "not a holiday")
	}
	fmt.Fprintf(formatter.Writer, "%s is %s\n", dateArg, info.Name)
	return nil
}
