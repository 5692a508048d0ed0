package calc

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// FixedCalculator computes month/day holidays such as Dec 25.
type FixedCalculator struct{}

// Calculate builds date(year, month, day) and verifies it round-trips.
//
// time.Date normalizes out-of-range components (Feb 29 in a non-leap year
// becomes Mar 1). A date that does not reconstruct exactly is treated as
// "does not occur this year" and yields an empty result, never a silently
// rolled-over date.
func (FixedCalculator) Calculate(r *rule.Rule, year int, _ *Context) ([]time.Time, error) {
	p := r.Fixed
	d := rule.Date(year, p.Month, p.Day)
	if d.Year() != year || d.Month() != p.Month || d.Day() != p.Day {
		return []time.Time{}, nil
	}
	return []time.Time{d}, nil
}
