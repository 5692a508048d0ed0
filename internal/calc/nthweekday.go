package calc

import (
	"fmt"
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// NthWeekdayCalculator computes holidays like "4th Thursday of November".
type NthWeekdayCalculator struct{}

// Calculate resolves the signed nth occurrence of a weekday in a month.
//
// Positive nth counts from the first occurrence: first + (nth-1)*7 days.
// Negative nth counts from the last occurrence backwards: last + (nth+1)*7.
// Arithmetic that lands outside the target month (a 5th Monday that does
// not exist) fails with RULE_UNSATISFIABLE naming the violated constraint.
func (NthWeekdayCalculator) Calculate(r *rule.Rule, year int, _ *Context) ([]time.Time, error) {
	p := r.NthWeekday

	var day int
	if p.Nth > 0 {
		first := firstWeekdayOfMonth(year, p.Month, p.Weekday)
		day = first + (p.Nth-1)*7
	} else {
		last := lastWeekdayOfMonth(year, p.Month, p.Weekday)
		day = last + (p.Nth+1)*7
	}

	if day < 1 || day > daysInMonth(year, p.Month) {
		e := rule.NewError(rule.ErrCodeUnsatisfiable, r, year, fmt.Sprintf(
			"no occurrence %d of %s in %s %d", p.Nth, p.Weekday, p.Month, year))
		return nil, e.WithDetail("constraint", fmt.Sprintf(
			"nth=%d weekday=%d month=%d year=%d", p.Nth, p.Weekday, p.Month, year))
	}
	return []time.Time{rule.Date(year, p.Month, day)}, nil
}

// firstWeekdayOfMonth returns the day-of-month (1-7) of the first occurrence
// of weekday in the month.
func firstWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) int {
	first := rule.Date(year, month, 1)
	return 1 + int((weekday-first.Weekday()+7)%7)
}

// lastWeekdayOfMonth returns the day-of-month of the last occurrence of
// weekday in the month.
func lastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) int {
	n := daysInMonth(year, month)
	last := rule.Date(year, month, n)
	return n - int((last.Weekday()-weekday+7)%7)
}

// daysInMonth returns the number of days in the month. Day 0 of the next
// month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return rule.Date(year, month+1, 0).Day()
}
