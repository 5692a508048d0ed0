package locale

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// UnitedStates returns the federal holiday rule set.
//
// Fixed-date federal holidays observe the nearest weekday (Saturday is
// observed Friday, Sunday is observed Monday), per 5 U.S.C. 6103.
func UnitedStates() []*rule.Rule {
	nearest := &rule.ObservedRule{Type: rule.ObserveNearestWeekday}
	return []*rule.Rule{
		{
			Name:     "New Year's Day",
			Type:     rule.TypeFixed,
			Fixed:    &rule.FixedRule{Month: time.January, Day: 1},
			Observed: nearest,
			Regions:  []string{"US"},
		},
		{
			Name:       "Martin Luther King Jr. Day",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.January, Weekday: time.Monday, Nth: 3},
			Regions:    []string{"US"},
		},
		{
			Name:       "Washington's Birthday",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.February, Weekday: time.Monday, Nth: 3},
			Regions:    []string{"US"},
		},
		{
			Name:       "Memorial Day",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.May, Weekday: time.Monday, Nth: -1},
			Regions:    []string{"US"},
		},
		{
			Name:     "Juneteenth",
			Type:     rule.TypeFixed,
			Fixed:    &rule.FixedRule{Month: time.June, Day: 19},
			Observed: nearest,
			Regions:  []string{"US"},
		},
		{
			Name:     "Independence Day",
			Type:     rule.TypeFixed,
			Fixed:    &rule.FixedRule{Month: time.July, Day: 4},
			Observed: nearest,
			Regions:  []string{"US"},
		},
		{
			Name:       "Labor Day",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.September, Weekday: time.Monday, Nth: 1},
			Regions:    []string{"US"},
		},
		{
			Name:       "Columbus Day",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.October, Weekday: time.Monday, Nth: 2},
			Regions:    []string{"US"},
		},
		{
			Name:     "Veterans Day",
			Type:     rule.TypeFixed,
			Fixed:    &rule.FixedRule{Month: time.November, Day: 11},
			Observed: nearest,
			Regions:  []string{"US"},
		},
		{
			Name:       "Thanksgiving Day",
			Type:       rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.November, Weekday: time.Thursday, Nth: 4},
			Regions:    []string{"US"},
		},
		{
			Name:     "Christmas Day",
			Type:     rule.TypeFixed,
			Fixed:    &rule.FixedRule{Month: time.December, Day: 25},
			Observed: nearest,
			Regions:  []string{"US"},
		},
	}
}
