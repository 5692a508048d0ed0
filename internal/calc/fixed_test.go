package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersinkoc/kairos/internal/rule"
)

func TestFixedCalculator_SimpleDate(t *testing.T) {
	r := &rule.Rule{Name: "Christmas", Type: rule.TypeFixed,
		Fixed: &rule.FixedRule{Month: time.December, Day: 25}}

	dates, err := FixedCalculator{}.Calculate(r, 2024, nil)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, rule.Date(2024, time.December, 25), dates[0])
}

func TestFixedCalculator_LeapDayInLeapYear(t *testing.T) {
	r := &rule.Rule{Name: "Leap Day", Type: rule.TypeFixed,
		Fixed: &rule.FixedRule{Month: time.February, Day: 29}}

	dates, err := FixedCalculator{}.Calculate(r, 2024, nil)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, rule.Date(2024, time.February, 29), dates[0])
}

func TestFixedCalculator_LeapDayInCommonYearIsEmpty(t *testing.T) {
	r := &rule.Rule{Name: "Leap Day", Type: rule.TypeFixed,
		Fixed: &rule.FixedRule{Month: time.February, Day: 29}}

	dates, err := FixedCalculator{}.Calculate(r, 2023, nil)
	require.NoError(t, err)
	assert.Empty(t, dates, "Feb 29 must not roll over to Mar 1 in a common year")
}

func TestFixedCalculator_RoundTripProperty(t *testing.T) {
	// Every returned date reconstructs the requested month/day exactly.
	r := &rule.Rule{Type: rule.TypeFixed, Fixed: &rule.FixedRule{Month: time.April, Day: 30}}
	for year := 1900; year <= 1910; year++ {
		dates, err := FixedCalculator{}.Calculate(r, year, nil)
		require.NoError(t, err)
		for _, d := range dates {
			assert.Equal(t, year, d.Year())
			assert.Equal(t, time.April, d.Month())
			assert.Equal(t, 30, d.Day())
		}
	}
}
