package locale

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// GermanyNRW returns the public holiday rule set for North Rhine-Westphalia.
// German holidays are not weekend-shifted; the movable ones hang off
// Easter Sunday.
func GermanyNRW() []*rule.Rule {
	return []*rule.Rule{
		{
			Name:    "Neujahr",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.January, Day: 1},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Karfreitag",
			Type:    rule.TypeEaster,
			Easter:  &rule.EasterRule{Offset: -2},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Ostermontag",
			Type:    rule.TypeEaster,
			Easter:  &rule.EasterRule{Offset: 1},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Tag der Arbeit",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.May, Day: 1},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Christi Himmelfahrt",
			Type:    rule.TypeEaster,
			Easter:  &rule.EasterRule{Offset: 39},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Pfingstmontag",
			Type:    rule.TypeEaster,
			Easter:  &rule.EasterRule{Offset: 50},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Fronleichnam",
			Type:    rule.TypeEaster,
			Easter:  &rule.EasterRule{Offset: 60},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Tag der Deutschen Einheit",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.October, Day: 3},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "Allerheiligen",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.November, Day: 1},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "1. Weihnachtstag",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.December, Day: 25},
			Regions: []string{"DE-NW"},
		},
		{
			Name:    "2. Weihnachtstag",
			Type:    rule.TypeFixed,
			Fixed:   &rule.FixedRule{Month: time.December, Day: 26},
			Regions: []string{"DE-NW"},
		},
	}
}

// Sets maps the built-in locale identifiers to their rule sets.
func Sets() map[string]func() []*rule.Rule {
	return map[string]func() []*rule.Rule{
		"us":    UnitedStates,
		"de-nw": GermanyNRW,
	}
}
