package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersinkoc/kairos/internal/rule"
	"github.com/ersinkoc/kairos/internal/testutil"
)

func janDecRules() []*rule.Rule {
	return []*rule.Rule{
		fixedRule("New Year's Day", time.January, 1),
		fixedRule("Christmas", time.December, 25),
	}
}

func TestIsHoliday_Match(t *testing.T) {
	e := New()

	info, err := e.IsHoliday(testutil.MustDate(t, "2024-12-25"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Christmas", info.Name)
	assert.Equal(t, rule.TypeFixed, info.Type)
	assert.Equal(t, testutil.MustDate(t, "2024-12-25"), info.Date)
}

func TestIsHoliday_NoMatchReturnsNil(t *testing.T) {
	e := New()

	info, err := e.IsHoliday(testutil.MustDate(t, "2024-03-01"), janDecRules())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestIsHoliday_FirstMatchWins(t *testing.T) {
	// Two rules on the same date: list order decides, no specificity
	// ranking.
	rules := []*rule.Rule{
		fixedRule("Second Christmas Eve Eve", time.December, 25),
		fixedRule("Christmas", time.December, 25),
	}
	e := New()

	info, err := e.IsHoliday(testutil.MustDate(t, "2024-12-25"), rules)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Second Christmas Eve Eve", info.Name)
}

func TestIsHoliday_InactiveRulesSkipped(t *testing.T) {
	r := fixedRule("Christmas", time.December, 25)
	r.Inactive = true
	e := New()

	info, err := e.IsHoliday(testutil.MustDate(t, "2024-12-25"), []*rule.Rule{r})
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestIsHoliday_RelativeRulesGetFullRuleSetContext(t *testing.T) {
	rules := []*rule.Rule{
		{Name: "Thanksgiving", Type: rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.November, Weekday: time.Thursday, Nth: 4}},
		{Name: "Black Friday", Type: rule.TypeRelative,
			Relative: &rule.RelativeRule{RelativeTo: "Thanksgiving", Offset: 1}},
	}
	e := New()

	info, err := e.IsHoliday(testutil.MustDate(t, "2024-11-29"), rules)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Black Friday", info.Name)
}

func TestHolidaysForYear_SortedUnion(t *testing.T) {
	e := New()

	infos, err := e.HolidaysForYear(2024, []*rule.Rule{
		fixedRule("Christmas", time.December, 25),
		fixedRule("New Year's Day", time.January, 1),
		fixedRule("Midsummer", time.June, 24),
	})
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "New Year's Day", infos[0].Name)
	assert.Equal(t, "Midsummer", infos[1].Name)
	assert.Equal(t, "Christmas", infos[2].Name)
}

func TestHolidaysForYear_MultiDayContributesEachDate(t *testing.T) {
	r := fixedRule("Golden Week", time.April, 29)
	r.Duration = 3
	e := New()

	infos, err := e.HolidaysForYear(2024, []*rule.Rule{r})
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, testutil.MustDates(t, "2024-04-29", "2024-04-30", "2024-05-01"),
		[]time.Time{infos[0].Date, infos[1].Date, infos[2].Date})
}

func TestHolidaysForYear_AbortsOnFirstRuleFailure(t *testing.T) {
	e := New()

	infos, err := e.HolidaysForYear(2024, []*rule.Rule{
		fixedRule("New Year's Day", time.January, 1),
		{Name: "Broken", Type: rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.February, Weekday: time.Monday, Nth: 5}},
		fixedRule("Christmas", time.December, 25),
	})
	require.Error(t, err)
	assert.Nil(t, infos, "batch queries abort entirely on any rule failure")
	assert.True(t, rule.IsUnsatisfiable(err))
}

func TestHolidaysForYear_ErrorsCarryQueryToken(t *testing.T) {
	e := New(WithTokenGenerator(NewFixedGenerator("tok-1")))

	_, err := e.HolidaysForYear(2024, []*rule.Rule{
		{Name: "Broken", Type: rule.TypeNthWeekday,
			NthWeekday: &rule.NthWeekdayRule{Month: time.February, Weekday: time.Monday, Nth: 5}},
	})
	require.Error(t, err)

	var re *rule.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "tok-1", re.Details["query_token"])
}

func TestHolidaysInRange_InclusiveBounds(t *testing.T) {
	e := New()

	infos, err := e.HolidaysInRange(
		testutil.MustDate(t, "2024-12-25"),
		testutil.MustDate(t, "2025-01-01"),
		janDecRules())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, testutil.MustDate(t, "2024-12-25"), infos[0].Date)
	assert.Equal(t, testutil.MustDate(t, "2025-01-01"), infos[1].Date)
}

func TestHolidaysInRange_ExcludesOutside(t *testing.T) {
	e := New()

	infos, err := e.HolidaysInRange(
		testutil.MustDate(t, "2024-02-01"),
		testutil.MustDate(t, "2024-11-30"),
		janDecRules())
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestNextHoliday_SameYearThenFollowing(t *testing.T) {
	e := New()

	// Anchor inside the year: Dec 25 2024 is next.
	info, err := e.NextHoliday(testutil.MustDate(t, "2024-03-01"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Christmas", info.Name)
	assert.Equal(t, testutil.MustDate(t, "2024-12-25"), info.Date)

	// Anchor after the year's last holiday: falls over to next year.
	info, err = e.NextHoliday(testutil.MustDate(t, "2024-12-26"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, testutil.MustDate(t, "2025-01-01"), info.Date)
}

func TestNextHoliday_StrictlyAfterAnchor(t *testing.T) {
	e := New()

	info, err := e.NextHoliday(testutil.MustDate(t, "2024-12-25"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, testutil.MustDate(t, "2025-01-01"), info.Date,
		"a holiday on the anchor date itself does not count")
}

func TestPreviousHoliday_SameYearThenPreceding(t *testing.T) {
	e := New()

	info, err := e.PreviousHoliday(testutil.MustDate(t, "2024-03-01"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "New Year's Day", info.Name)
	assert.Equal(t, testutil.MustDate(t, "2024-01-01"), info.Date)

	info, err = e.PreviousHoliday(testutil.MustDate(t, "2024-01-01"), janDecRules())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, testutil.MustDate(t, "2023-12-25"), info.Date)
}

func TestNextPrevious_NoHolidaysReturnsNil(t *testing.T) {
	e := New()

	next, err := e.NextHoliday(testutil.MustDate(t, "2024-03-01"), nil)
	require.NoError(t, err)
	assert.Nil(t, next)

	prev, err := e.PreviousHoliday(testutil.MustDate(t, "2024-03-01"), nil)
	require.NoError(t, err)
	assert.Nil(t, prev)
}
