package rule

import "time"

// Rule type tags. Dispatch is by string tag so that calculator registration
// stays open, but the payload set below is the closed union the engine
// validates against.
const (
	TypeFixed      = "fixed"
	TypeNthWeekday = "nth-weekday"
	TypeEaster     = "easter"
	TypeLunar      = "lunar"
	TypeRelative   = "relative"
	TypeCustom     = "custom"
)

// Easter variants.
const (
	EasterGregorian = "gregorian"
	EasterOrthodox  = "orthodox"
)

// Lunar calendar identifiers.
const (
	CalendarIslamic = "islamic"
	CalendarChinese = "chinese"
	CalendarHebrew  = "hebrew"
	CalendarPersian = "persian"
)

// Observance policy types.
const (
	ObserveSubstitute     = "substitute"
	ObserveNearestWeekday = "nearest-weekday"
	ObserveBridge         = "bridge"
)

// Observance step directions.
const (
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// Rule is a declarative descriptor of how to compute a holiday's date(s)
// for a year. Exactly one payload pointer must be set, matching Type.
//
// Rules are supplied externally per call; the engine never owns or
// mutates them.
type Rule struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`

	Fixed      *FixedRule      `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	NthWeekday *NthWeekdayRule `json:"nth_weekday,omitempty" yaml:"nth_weekday,omitempty"`
	Easter     *EasterRule     `json:"easter,omitempty" yaml:"easter,omitempty"`
	Lunar      *LunarRule      `json:"lunar,omitempty" yaml:"lunar,omitempty"`
	Relative   *RelativeRule   `json:"relative,omitempty" yaml:"relative,omitempty"`
	Custom     *CustomRule     `json:"custom,omitempty" yaml:"custom,omitempty"`

	// Observed, when set, shifts weekend occurrences per policy after
	// calculation.
	Observed *ObservedRule `json:"observed,omitempty" yaml:"observed,omitempty"`

	// Duration > 1 expands each computed start date into that many
	// consecutive dates. Zero means a single day.
	Duration int `json:"duration,omitempty" yaml:"duration,omitempty"`

	Regions []string `json:"regions,omitempty" yaml:"regions,omitempty"`

	// Inactive rules are skipped by all batch queries. The zero value is
	// active, matching the external rule format's `active: true` default.
	Inactive bool `json:"inactive,omitempty" yaml:"inactive,omitempty"`
}

// Active reports whether the rule participates in batch queries.
func (r *Rule) Active() bool { return !r.Inactive }

// DisplayName returns the best human-readable identifier for diagnostics:
// name, then id, then the type tag.
func (r *Rule) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return r.Type
}

// FixedRule pins a holiday to a calendar month and day (e.g., Dec 25).
type FixedRule struct {
	Month time.Month `json:"month" yaml:"month"`
	Day   int        `json:"day" yaml:"day"`
}

// NthWeekdayRule selects the nth occurrence of a weekday within a month.
// Nth is signed: positive counts from the start of the month, negative
// from the end (-1 is the last occurrence). Zero is invalid.
type NthWeekdayRule struct {
	Month   time.Month   `json:"month" yaml:"month"`
	Weekday time.Weekday `json:"weekday" yaml:"weekday"`
	Nth     int          `json:"nth" yaml:"nth"`
}

// EasterRule is a signed day offset from Easter Sunday. Variant selects
// the Gregorian (western) or Orthodox computation; empty means Gregorian.
type EasterRule struct {
	Offset  int    `json:"offset" yaml:"offset"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// LunarRule places a holiday on a month/day of a non-Gregorian calendar.
// The conversion to Gregorian is approximate; see the calc package.
type LunarRule struct {
	Calendar string `json:"calendar" yaml:"calendar"`
	Month    int    `json:"month" yaml:"month"`
	Day      int    `json:"day" yaml:"day"`
}

// RelativeRule defines a holiday as a signed day offset from another
// holiday in the same rule set, referenced by name or id.
type RelativeRule struct {
	RelativeTo string `json:"relative_to" yaml:"relative_to"`
	Offset     int    `json:"offset" yaml:"offset"`
}

// CustomRule delegates calculation to a function registered on the engine
// under Func. The rule stores a lookup key, not a closure, so custom rules
// remain plain serializable data.
type CustomRule struct {
	Func string `json:"func" yaml:"func"`
}

// ObservedRule is the policy for shifting a computed date off a weekend.
type ObservedRule struct {
	Type string `json:"type" yaml:"type"`

	// Weekends is the set of weekdays treated as weekend. Empty means
	// {Saturday, Sunday}.
	Weekends []time.Weekday `json:"weekends,omitempty" yaml:"weekends,omitempty"`

	// Direction controls which way substitute stepping moves. Empty means
	// forward.
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// WeekendSet returns the effective weekend set with the default applied.
func (o *ObservedRule) WeekendSet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, 2)
	if len(o.Weekends) == 0 {
		set[time.Saturday] = true
		set[time.Sunday] = true
		return set
	}
	for _, d := range o.Weekends {
		set[d] = true
	}
	return set
}

// StepDirection returns the effective direction with the default applied.
func (o *ObservedRule) StepDirection() string {
	if o.Direction == "" {
		return DirectionForward
	}
	return o.Direction
}

// HolidayInfo is a computed holiday occurrence.
type HolidayInfo struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
	Regions []string  `json:"regions,omitempty"`
}

// Date builds the calendar date (midnight UTC) used throughout the engine.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
