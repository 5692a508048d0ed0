package rule

import (
	"fmt"
	"time"
)

var validEasterVariants = map[string]bool{
	"":              true, // defaults to gregorian
	EasterGregorian: true,
	EasterOrthodox:  true,
}

var validLunarCalendars = map[string]bool{
	CalendarIslamic: true,
	CalendarChinese: true,
	CalendarHebrew:  true,
	CalendarPersian: true,
}

var validObservedTypes = map[string]bool{
	ObserveSubstitute:     true,
	ObserveNearestWeekday: true,
	ObserveBridge:         true,
}

var validDirections = map[string]bool{
	"":                true, // defaults to forward
	DirectionForward:  true,
	DirectionBackward: true,
}

// Validate checks a rule's shape before calculation. It returns an
// INVALID_HOLIDAY_RULE error naming the first violated constraint, or nil.
//
// Validation is purely structural. Whether the rule has a date in a given
// year (a 5th Monday, Feb 29) is the calculator's concern, not Validate's.
func Validate(r *Rule) error {
	if r == nil {
		return &Error{Code: ErrCodeInvalidRule, Message: "rule is nil"}
	}

	payload, err := payloadFor(r)
	if err != nil {
		return err
	}
	if err := payload(); err != nil {
		return err
	}

	if r.Duration == 1 || r.Duration < 0 {
		return invalid(r, "duration", "must be an integer greater than 1 when set")
	}

	if r.Observed != nil {
		if !validObservedTypes[r.Observed.Type] {
			return invalid(r, "observed.type",
				fmt.Sprintf("unknown observance type %q", r.Observed.Type))
		}
		if !validDirections[r.Observed.Direction] {
			return invalid(r, "observed.direction",
				fmt.Sprintf("unknown direction %q", r.Observed.Direction))
		}
		for _, d := range r.Observed.Weekends {
			if d < time.Sunday || d > time.Saturday {
				return invalid(r, "observed.weekends",
					fmt.Sprintf("weekday %d out of range", d))
			}
		}
		if r.Observed.Type == ObserveSubstitute && len(r.Observed.WeekendSet()) == 7 {
			return invalid(r, "observed.weekends",
				"weekend set covers all seven days; substitution is unsatisfiable")
		}
	}

	return nil
}

// payloadFor returns the payload check matching r.Type, or an error when the
// type is unknown or the payload pointer is missing or mismatched.
func payloadFor(r *Rule) (func() error, error) {
	switch r.Type {
	case TypeFixed:
		if r.Fixed == nil {
			return nil, invalid(r, "fixed", "payload required for fixed rules")
		}
		return func() error { return validateFixed(r) }, nil
	case TypeNthWeekday:
		if r.NthWeekday == nil {
			return nil, invalid(r, "nth_weekday", "payload required for nth-weekday rules")
		}
		return func() error { return validateNthWeekday(r) }, nil
	case TypeEaster:
		if r.Easter == nil {
			return nil, invalid(r, "easter", "payload required for easter rules")
		}
		return func() error { return validateEaster(r) }, nil
	case TypeLunar:
		if r.Lunar == nil {
			return nil, invalid(r, "lunar", "payload required for lunar rules")
		}
		return func() error { return validateLunar(r) }, nil
	case TypeRelative:
		if r.Relative == nil {
			return nil, invalid(r, "relative", "payload required for relative rules")
		}
		return func() error { return validateRelative(r) }, nil
	case TypeCustom:
		if r.Custom == nil {
			return nil, invalid(r, "custom", "payload required for custom rules")
		}
		return func() error { return validateCustom(r) }, nil
	case "":
		return nil, invalid(r, "type", "rule type is required")
	default:
		// Unknown tags may have a host-registered calculator; whether one
		// exists is dispatch's concern (UNKNOWN_HOLIDAY_TYPE), not shape
		// validation's.
		return func() error { return nil }, nil
	}
}

func validateFixed(r *Rule) error {
	if r.Fixed.Month < time.January || r.Fixed.Month > time.December {
		return invalid(r, "fixed.month", fmt.Sprintf("month %d out of range 1-12", r.Fixed.Month))
	}
	if r.Fixed.Day < 1 || r.Fixed.Day > 31 {
		return invalid(r, "fixed.day", fmt.Sprintf("day %d out of range 1-31", r.Fixed.Day))
	}
	return nil
}

func validateNthWeekday(r *Rule) error {
	p := r.NthWeekday
	if p.Month < time.January || p.Month > time.December {
		return invalid(r, "nth_weekday.month", fmt.Sprintf("month %d out of range 1-12", p.Month))
	}
	if p.Weekday < time.Sunday || p.Weekday > time.Saturday {
		return invalid(r, "nth_weekday.weekday", fmt.Sprintf("weekday %d out of range 0-6", p.Weekday))
	}
	if p.Nth == 0 {
		return invalid(r, "nth_weekday.nth", "nth must be non-zero")
	}
	if p.Nth > 5 || p.Nth < -5 {
		return invalid(r, "nth_weekday.nth", fmt.Sprintf("nth %d out of range", p.Nth))
	}
	return nil
}

func validateEaster(r *Rule) error {
	if !validEasterVariants[r.Easter.Variant] {
		return invalid(r, "easter.variant", fmt.Sprintf("unknown variant %q", r.Easter.Variant))
	}
	return nil
}

func validateLunar(r *Rule) error {
	p := r.Lunar
	if !validLunarCalendars[p.Calendar] {
		return invalid(r, "lunar.calendar", fmt.Sprintf("unknown calendar %q", p.Calendar))
	}
	if p.Month < 1 || p.Month > 13 {
		return invalid(r, "lunar.month", fmt.Sprintf("month %d out of range 1-13", p.Month))
	}
	if p.Day < 1 || p.Day > 30 {
		return invalid(r, "lunar.day", fmt.Sprintf("day %d out of range 1-30", p.Day))
	}
	return nil
}

func validateRelative(r *Rule) error {
	if r.Relative.RelativeTo == "" {
		return invalid(r, "relative.relative_to", "target holiday name is required")
	}
	return nil
}

func validateCustom(r *Rule) error {
	if r.Custom.Func == "" {
		return invalid(r, "custom.func", "registered function name is required")
	}
	return nil
}

func invalid(r *Rule, field, message string) *Error {
	e := NewError(ErrCodeInvalidRule, r, 0, fmt.Sprintf("%s: %s", field, message))
	return e.WithDetail("field", field)
}
