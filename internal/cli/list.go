package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/kairos/internal/engine"
	"github.com/ersinkoc/kairos/internal/rule"
)

// holidayRow is the JSON shape for one holiday occurrence.
type holidayRow struct {
	Date    string   `json:"date"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Regions []string `json:"regions,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <year>",
		Short: "List all holidays in a year",
		Long: `List every holiday occurrence in a year, sorted by date.

The rule set comes from --locale (built-in) or --rules (YAML file).
Multi-day holidays contribute one line per day.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, yearArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid year %q", yearArg))
	}

	rules, err := opts.ruleSet()
	if err != nil {
		return err
	}
	formatter.VerboseLog("loaded %d rules", len(rules))

	eng := engine.New()
	infos, err := eng.HolidaysForYear(year, rules)
	if err != nil {
		return reportRuleError(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.JSON(toRows(infos))
	}
	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%s  %-9s %s\n",
			info.Date.Format("2006-01-02"), info.Date.Format("Monday"), info.Name)
	}
	return nil
}

func toRows(infos []rule.HolidayInfo) []holidayRow {
	rows := make([]holidayRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, holidayRow{
			Date:    info.Date.Format("2006-01-02"),
			Name:    info.Name,
			Type:    info.Type,
			Regions: info.Regions,
		})
	}
	return rows
}

// row converts a single occurrence for JSON output.
func row(info *rule.HolidayInfo) *holidayRow {
	if info == nil {
		return nil
	}
	rows := toRows([]rule.HolidayInfo{*info})
	return &rows[0]
}

// formatOccurrence renders one occurrence for text output.
func formatOccurrence(info *rule.HolidayInfo) string {
	return fmt.Sprintf("%s (%s)", info.Name, info.Date.Format("2006-01-02"))
}

// dateArg resolves an optional date argument, defaulting to today.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return rule.Date(now.Year(), now.Month(), now.Day()), nil
	}
	return parseDate(args[0])
}
