package calc

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// gregorianReformYear is the first full year of the Gregorian calendar.
// The Gregorian computus is undefined before it.
const gregorianReformYear = 1583

// EasterCalculator computes Easter-anchored holidays. The rule's signed
// offset shifts the computed Easter Sunday (Good Friday is -2, Pentecost
// is +49).
type EasterCalculator struct{}

// Calculate resolves Easter Sunday for the year and variant, then applies
// the offset.
func (EasterCalculator) Calculate(r *rule.Rule, year int, _ *Context) ([]time.Time, error) {
	var easter time.Time
	switch {
	case r.Easter.Variant == rule.EasterOrthodox:
		easter = orthodoxEaster(year)
	case year < gregorianReformYear:
		// Before the reform the Julian calendar is the civil calendar, so
		// the Julian computus date is used as-is.
		easter = julianEaster(year)
	default:
		easter = gregorianEaster(year)
	}
	return []time.Time{easter.AddDate(0, 0, r.Easter.Offset)}, nil
}

// gregorianEaster computes Easter Sunday using the anonymous Gregorian
// computus (Meeus/Jones/Butcher form). Valid for all Gregorian years.
func gregorianEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return rule.Date(year, time.Month(month), day)
}

// julianEaster computes Easter Sunday via the Julian (Meeus) computus.
// The returned date is a Julian-calendar date.
func julianEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	return rule.Date(year, time.Month(month), day)
}

// orthodoxEaster computes the Julian Easter and converts it to its
// Gregorian-calendar equivalent via a Julian-day round trip.
func orthodoxEaster(year int) time.Time {
	j := julianEaster(year)
	jdn := julianToJDN(j.Year(), int(j.Month()), j.Day())
	y, m, d := jdnToGregorian(jdn)
	return rule.Date(y, time.Month(m), d)
}

// julianToJDN converts a Julian-calendar date to a Julian day number.
func julianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

// gregorianToJDN converts a Gregorian-calendar date to a Julian day number.
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian day number to a Gregorian calendar date.
func jdnToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}
