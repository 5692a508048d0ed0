package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/ersinkoc/kairos/internal/calc"
	"github.com/ersinkoc/kairos/internal/rule"
)

// IsHoliday reports whether date falls on a holiday from the rule set.
//
// Rules are checked in list order with full-rule-set context; the FIRST
// rule containing the date wins, with no specificity ranking. Returns nil
// when the date is not a holiday.
func (e *Engine) IsHoliday(date time.Time, rules []*rule.Rule) (*rule.HolidayInfo, error) {
	token := e.tokens.Generate()
	rctx := calc.NewContext(rules, e.registry)

	for _, r := range rules {
		if !r.Active() {
			continue
		}
		dates, err := e.calculate(r, date.Year(), rctx)
		if err != nil {
			return nil, stampToken(err, token)
		}
		for _, d := range dates {
			if rule.SameDay(d, date) {
				return occurrence(r, d), nil
			}
		}
	}
	return nil, nil
}

// HolidaysForYear returns every occurrence of every active rule in the
// year, sorted ascending by date. Multi-day holidays contribute one
// occurrence per expanded date. Aborts entirely on the first rule failure;
// rule sets are expected to be validated ahead of time.
func (e *Engine) HolidaysForYear(year int, rules []*rule.Rule) ([]rule.HolidayInfo, error) {
	token := e.tokens.Generate()
	rctx := calc.NewContext(rules, e.registry)
	return e.holidaysForYear(year, rules, rctx, token)
}

func (e *Engine) holidaysForYear(year int, rules []*rule.Rule, rctx *calc.Context, token string) ([]rule.HolidayInfo, error) {
	var infos []rule.HolidayInfo
	for _, r := range rules {
		if !r.Active() {
			continue
		}
		dates, err := e.calculate(r, year, rctx)
		if err != nil {
			return nil, stampToken(err, token)
		}
		for _, d := range dates {
			infos = append(infos, *occurrence(r, d))
		}
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Date.Before(infos[j].Date)
	})
	return infos, nil
}

// HolidaysInRange returns the occurrences inside [start, end], inclusive
// on both ends, across every year the range touches.
func (e *Engine) HolidaysInRange(start, end time.Time, rules []*rule.Rule) ([]rule.HolidayInfo, error) {
	token := e.tokens.Generate()
	rctx := calc.NewContext(rules, e.registry)

	startDay := rule.Date(start.Year(), start.Month(), start.Day())
	endDay := rule.Date(end.Year(), end.Month(), end.Day())

	var infos []rule.HolidayInfo
	for year := startDay.Year(); year <= endDay.Year(); year++ {
		yearly, err := e.holidaysForYear(year, rules, rctx, token)
		if err != nil {
			return nil, err
		}
		for _, info := range yearly {
			if info.Date.Before(startDay) || info.Date.After(endDay) {
				continue
			}
			infos = append(infos, info)
		}
	}
	return infos, nil
}

// NextHoliday returns the first occurrence strictly after the anchor date,
// scanning the anchor's year and falling back to the following year.
// Returns nil when neither year has one.
func (e *Engine) NextHoliday(after time.Time, rules []*rule.Rule) (*rule.HolidayInfo, error) {
	token := e.tokens.Generate()
	rctx := calc.NewContext(rules, e.registry)

	anchor := rule.Date(after.Year(), after.Month(), after.Day())
	for _, year := range []int{anchor.Year(), anchor.Year() + 1} {
		infos, err := e.holidaysForYear(year, rules, rctx, token)
		if err != nil {
			return nil, err
		}
		for i := range infos {
			if infos[i].Date.After(anchor) {
				return &infos[i], nil
			}
		}
	}
	return nil, nil
}

// PreviousHoliday returns the last occurrence strictly before the anchor
// date, scanning the anchor's year and falling back to the preceding year.
// Returns nil when neither year has one.
func (e *Engine) PreviousHoliday(before time.Time, rules []*rule.Rule) (*rule.HolidayInfo, error) {
	token := e.tokens.Generate()
	rctx := calc.NewContext(rules, e.registry)

	anchor := rule.Date(before.Year(), before.Month(), before.Day())
	for _, year := range []int{anchor.Year(), anchor.Year() - 1} {
		infos, err := e.holidaysForYear(year, rules, rctx, token)
		if err != nil {
			return nil, err
		}
		for i := len(infos) - 1; i >= 0; i-- {
			if infos[i].Date.Before(anchor) {
				return &infos[i], nil
			}
		}
	}
	return nil, nil
}

// occurrence builds the computed-holiday record for a rule and date.
func occurrence(r *rule.Rule, d time.Time) *rule.HolidayInfo {
	return &rule.HolidayInfo{
		ID:      r.ID,
		Name:    r.Name,
		Type:    r.Type,
		Date:    d,
		Regions: r.Regions,
	}
}

// stampToken attaches the query token to structured errors so interleaved
// diagnostics can be correlated back to one query.
func stampToken(err error, token string) error {
	var re *rule.Error
	if errors.As(err, &re) {
		re.WithDetail("query_token", token)
	}
	return err
}
