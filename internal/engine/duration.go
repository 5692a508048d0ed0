package engine

import "time"

// expandDuration turns each start date into duration consecutive dates:
// [start, start+1, ..., start+duration-1]. Durations below 2 are the
// identity.
func expandDuration(dates []time.Time, duration int) []time.Time {
	if duration < 2 {
		return dates
	}
	out := make([]time.Time, 0, len(dates)*duration)
	for _, start := range dates {
		for i := 0; i < duration; i++ {
			out = append(out, start.AddDate(0, 0, i))
		}
	}
	return out
}
