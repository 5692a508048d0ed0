package engine

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// applyObservance post-processes raw dates per the rule's observed policy.
// Non-weekend dates pass through unchanged. A nil policy is the identity.
func applyObservance(dates []time.Time, obs *rule.ObservedRule) []time.Time {
	if obs == nil {
		return dates
	}

	weekends := obs.WeekendSet()
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		switch obs.Type {
		case rule.ObserveSubstitute:
			out = append(out, substitute(d, weekends, obs.StepDirection()))
		case rule.ObserveNearestWeekday:
			out = append(out, nearestWeekday(d))
		case rule.ObserveBridge:
			out = append(out, bridge(d, weekends, obs.StepDirection())...)
		default:
			out = append(out, d)
		}
	}
	return out
}

// substitute steps day-by-day in direction until the date leaves the
// weekend set. Validation rejects all-week weekend sets upfront, so seven
// steps always suffice.
func substitute(d time.Time, weekends map[time.Weekday]bool, direction string) time.Time {
	step := 1
	if direction == rule.DirectionBackward {
		step = -1
	}
	for i := 0; i < 7 && weekends[d.Weekday()]; i++ {
		d = d.AddDate(0, 0, step)
	}
	return d
}

// nearestWeekday applies the classic federal rule: Sunday observes Monday,
// Saturday observes Friday. It deliberately does not generalize to custom
// weekend sets.
func nearestWeekday(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	}
	return d
}

// bridge keeps the original date and emits one additional synthetic
// adjacent non-weekend date.
func bridge(d time.Time, weekends map[time.Weekday]bool, direction string) []time.Time {
	if !weekends[d.Weekday()] {
		return []time.Time{d}
	}
	return []time.Time{d, substitute(d, weekends, direction)}
}
