package calc

import (
	"fmt"
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// meanLunation is the mean synodic month length in days, shared by the
// lunar converters below.
const meanLunation = 29.530588861

// LunarConverter converts a date in a non-Gregorian calendar to the
// Gregorian calendar.
//
// All built-in converters are deliberate approximations: a linear year
// mapping, a fixed mean month length, and a per-calendar epoch offset.
// They land within days of the true date in the modern era, which is
// enough for "roughly when does this holiday fall" queries. Callers that
// need exact dates must supply per-year tables through a custom rule.
type LunarConverter interface {
	// LunarYear approximates which lunar year covers the given Gregorian
	// year for the converter's month numbering.
	LunarYear(gregorianYear, month int) int

	// ToGregorian converts a lunar calendar date to a Gregorian date.
	ToGregorian(lunarYear, month, day int) time.Time
}

// LunarCalculator dispatches to a pluggable converter per calendar.
type LunarCalculator struct {
	converters map[string]LunarConverter
}

// NewLunarCalculator creates a calculator with the four built-in
// converters (islamic, chinese, hebrew, persian).
func NewLunarCalculator() *LunarCalculator {
	return &LunarCalculator{converters: map[string]LunarConverter{
		rule.CalendarIslamic: islamicConverter{},
		rule.CalendarChinese: chineseConverter{},
		rule.CalendarHebrew:  hebrewConverter{},
		rule.CalendarPersian: persianConverter{},
	}}
}

// RegisterConverter replaces or adds a converter for a calendar.
func (c *LunarCalculator) RegisterConverter(calendar string, conv LunarConverter) {
	c.converters[calendar] = conv
}

// Calculate resolves the lunar year covering the Gregorian year, then
// converts (lunarYear, month, day) back to a Gregorian date.
func (c *LunarCalculator) Calculate(r *rule.Rule, year int, _ *Context) ([]time.Time, error) {
	p := r.Lunar
	conv, ok := c.converters[p.Calendar]
	if !ok {
		return nil, rule.NewError(rule.ErrCodeInvalidRule, r, year,
			fmt.Sprintf("lunar.calendar: no converter for %q", p.Calendar))
	}
	lunarYear := conv.LunarYear(year, p.Month)
	return []time.Time{conv.ToGregorian(lunarYear, p.Month, p.Day)}, nil
}

// islamicConverter implements the tabular (civil) Islamic calendar: twelve
// alternating 30/29-day months with eleven leap days spread over a 30-year
// intercalation cycle.
type islamicConverter struct{}

// islamicEpochJDN is the Julian day number of 1 Muharram 1 AH (civil epoch,
// 19 July 622 in the Gregorian calendar).
const islamicEpochJDN = 1948440

func (islamicConverter) LunarYear(gregorianYear, _ int) int {
	// Islamic years run about 3% faster than Gregorian ones: 32 Gregorian
	// years span roughly 33 Islamic years.
	return (gregorianYear - 622) * 33 / 32
}

func (islamicConverter) ToGregorian(lunarYear, month, day int) time.Time {
	jdn := day +
		29*(month-1) + month/2 + // alternating 30/29-day months
		354*(lunarYear-1) +
		(11*lunarYear+3)/30 + // 30-year intercalation cycle
		islamicEpochJDN - 1
	y, m, d := jdnToGregorian(jdn)
	return rule.Date(y, time.Month(m), d)
}

// chineseConverter approximates the Chinese lunisolar calendar with mean
// new moons: the lunar new year is taken as the first mean new moon on or
// after January 21, and months advance by the mean lunation from there.
// Leap months are not modeled.
type chineseConverter struct{}

// chineseNewMoonJDE is the Julian day of the mean new moon of 6 January
// 2000, the k=0 anchor of the mean-lunation series.
const chineseNewMoonJDE = 2451550.09766

func (chineseConverter) LunarYear(gregorianYear, _ int) int {
	// Chinese lunar months are conventionally labeled with the Gregorian
	// year their new year falls in.
	return gregorianYear
}

func (chineseConverter) ToGregorian(lunarYear, month, day int) time.Time {
	jan21 := float64(gregorianToJDN(lunarYear, 1, 21))
	k := ceilDiv(jan21-chineseNewMoonJDE, meanLunation)
	newYear := chineseNewMoonJDE + float64(k)*meanLunation

	jdn := int(newYear+0.5) + int(float64(month-1)*meanLunation+0.5) + day - 1
	y, m, d := jdnToGregorian(jdn)
	return rule.Date(y, time.Month(m), d)
}

// ceilDiv returns the smallest integer k with k*den >= num.
func ceilDiv(num, den float64) int {
	k := int(num / den)
	if float64(k)*den < num {
		k++
	}
	return k
}

// hebrewConverter approximates the Hebrew calendar with the standard
// elapsed-months formula of the 19-year cycle and a mean lunation. Months
// are numbered civilly from Tishri = 1. Postponement rules (dechiyot) and
// within-year leap-month placement are not modeled, so individual dates can
// drift by a few weeks in leap years.
type hebrewConverter struct{}

// hebrewEpochJDN is the Julian day number of Tishri 1, AM 1 (7 October
// 3761 BCE in the proleptic Julian calendar).
const hebrewEpochJDN = 347998

func (hebrewConverter) LunarYear(gregorianYear, month int) int {
	// Tishri through Adar (months 1-6) fall in the autumn and winter of
	// the previous Gregorian year's end; Nisan onward falls in spring.
	if month >= 7 {
		return gregorianYear + 3760
	}
	return gregorianYear + 3761
}

func (hebrewConverter) ToGregorian(lunarYear, month, day int) time.Time {
	months := hebrewElapsedMonths(lunarYear)
	jdn := hebrewEpochJDN + int(float64(months+month-1)*meanLunation) + day - 1
	y, m, d := jdnToGregorian(jdn)
	return rule.Date(y, time.Month(m), d)
}

// hebrewElapsedMonths counts lunar months from the epoch to Tishri of the
// given Hebrew year, using the 235-months-per-19-years cycle.
func hebrewElapsedMonths(year int) int {
	cycles := (year - 1) / 19
	rem := (year - 1) % 19
	return 235*cycles + 12*rem + (7*rem+1)/19
}

// persianConverter approximates the Solar Hijri calendar with a fixed
// Nowruz of March 21 and the standard 31/30/29-day month lengths. The true
// calendar anchors Nowruz to the vernal equinox, which shifts it to March
// 20 in some years.
type persianConverter struct{}

func (persianConverter) LunarYear(gregorianYear, _ int) int {
	return gregorianYear - 621
}

func (persianConverter) ToGregorian(lunarYear, month, day int) time.Time {
	var dayOfYear int
	if month <= 6 {
		dayOfYear = (month - 1) * 31
	} else {
		dayOfYear = 186 + (month-7)*30
	}
	nowruz := rule.Date(lunarYear+621, time.March, 21)
	return nowruz.AddDate(0, 0, dayOfYear+day-1)
}
