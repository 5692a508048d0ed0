package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersinkoc/kairos/internal/rule"
)

func easterRule(offset int, variant string) *rule.Rule {
	return &rule.Rule{Name: "test", Type: rule.TypeEaster,
		Easter: &rule.EasterRule{Offset: offset, Variant: variant}}
}

func calcEaster(t *testing.T, offset int, variant string, year int) time.Time {
	t.Helper()
	dates, err := EasterCalculator{}.Calculate(easterRule(offset, variant), year, nil)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	return dates[0]
}

func TestEaster_GregorianKnownYears(t *testing.T) {
	known := map[int]time.Time{
		2023: rule.Date(2023, time.April, 9),
		2024: rule.Date(2024, time.March, 31),
		2025: rule.Date(2025, time.April, 20),
		2026: rule.Date(2026, time.April, 5),
		2038: rule.Date(2038, time.April, 25), // latest possible Easter
	}
	for year, want := range known {
		assert.Equal(t, want, calcEaster(t, 0, "", year), "Easter %d", year)
	}
}

func TestEaster_OrthodoxKnownYears(t *testing.T) {
	known := map[int]time.Time{
		2024: rule.Date(2024, time.May, 5),
		2025: rule.Date(2025, time.April, 20), // coincides with western Easter
	}
	for year, want := range known {
		assert.Equal(t, want, calcEaster(t, 0, rule.EasterOrthodox, year), "Orthodox Easter %d", year)
	}
}

func TestEaster_SignedOffsets(t *testing.T) {
	// Good Friday and Pentecost hang off Easter Sunday 2024 (March 31).
	assert.Equal(t, rule.Date(2024, time.March, 29), calcEaster(t, -2, "", 2024))
	assert.Equal(t, rule.Date(2024, time.May, 19), calcEaster(t, 49, "", 2024))
}

func TestEaster_PreReformFallsBackToJulian(t *testing.T) {
	// Easter 1500 was April 19 in the Julian calendar, the civil calendar
	// of the time.
	assert.Equal(t, rule.Date(1500, time.April, 19), calcEaster(t, 0, "", 1500))
}

func TestEaster_AlwaysSunday(t *testing.T) {
	for year := 1990; year <= 2030; year++ {
		d := calcEaster(t, 0, "", year)
		assert.Equal(t, time.Sunday, d.Weekday(), "Easter %d", year)

		o := calcEaster(t, 0, rule.EasterOrthodox, year)
		assert.Equal(t, time.Sunday, o.Weekday(), "Orthodox Easter %d", year)
	}
}

func TestJDNRoundTrips(t *testing.T) {
	// Gregorian conversion round-trips across a wide range.
	for _, jdn := range []int{2299161, 2400000, 2451545, 2460436, 2500000} {
		y, m, d := jdnToGregorian(jdn)
		assert.Equal(t, jdn, gregorianToJDN(y, m, d), "jdn=%d", jdn)
	}
}
