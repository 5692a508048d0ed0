// Package testutil provides shared test helpers.
package testutil

import (
	"testing"
	"time"
)

// MustDate parses a YYYY-MM-DD string into a midnight-UTC calendar date,
// failing the test on malformed input.
func MustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// MustDates parses several YYYY-MM-DD strings.
func MustDates(t *testing.T, ss ...string) []time.Time {
	t.Helper()
	out := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		out = append(out, MustDate(t, s))
	}
	return out
}
