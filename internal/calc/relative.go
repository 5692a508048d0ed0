package calc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/ersinkoc/kairos/internal/rule"
)

// RelativeCalculator resolves holidays defined as an offset from another
// holiday in the same rule set (e.g., "day after Thanksgiving").
type RelativeCalculator struct{}

// Calculate resolves the base holiday from the context rule set, computes
// its occurrence for the same year, and shifts by the rule's offset.
//
// The base may be any fixed, nth-weekday, or easter rule. A base that is
// itself relative is followed just far enough to detect a cycle; straight
// chains deeper than one level are unsupported and fail as invalid.
func (RelativeCalculator) Calculate(r *rule.Rule, year int, rctx *Context) ([]time.Time, error) {
	return resolveRelative(r, year, rctx, nil)
}

// resolveRelative carries the visited chain explicitly so the cycle
// boundary is observable in tests. The chain holds display names in visit
// order; a revisit fails with the full path (A -> B -> A).
func resolveRelative(r *rule.Rule, year int, rctx *Context, visited []string) ([]time.Time, error) {
	name := r.DisplayName()
	for _, seen := range visited {
		if namesEqual(seen, name) {
			return nil, rule.NewCircularDependencyError(r, year, append(visited, name))
		}
	}
	visited = append(visited, name)

	if rctx == nil || len(rctx.Rules) == 0 {
		return nil, rule.NewError(rule.ErrCodeMissingBase, r, year,
			fmt.Sprintf("relative rule needs a rule set to resolve %q", r.Relative.RelativeTo))
	}

	base := findBase(rctx.Rules, r.Relative.RelativeTo)
	if base == nil {
		e := rule.NewError(rule.ErrCodeMissingBase, r, year,
			fmt.Sprintf("base holiday %q not found in rule set", r.Relative.RelativeTo))
		return nil, e.WithDetail("relative_to", r.Relative.RelativeTo)
	}

	if base.Type == rule.TypeRelative {
		baseName := base.DisplayName()
		for _, seen := range visited {
			if namesEqual(seen, baseName) {
				return nil, rule.NewCircularDependencyError(r, year, append(visited, baseName))
			}
		}
		if base.Relative != nil {
			target := base.Relative.RelativeTo
			for _, seen := range append(visited, baseName) {
				if namesEqual(seen, target) {
					chain := append(append(visited, baseName), target)
					return nil, rule.NewCircularDependencyError(r, year, chain)
				}
			}
		}
		e := rule.NewError(rule.ErrCodeInvalidRule, r, year, fmt.Sprintf(
			"base holiday %q is itself relative; chains deeper than one level are unsupported", baseName))
		return nil, e.WithDetail("relative_to", r.Relative.RelativeTo)
	}

	switch base.Type {
	case rule.TypeFixed, rule.TypeNthWeekday, rule.TypeEaster:
	default:
		e := rule.NewError(rule.ErrCodeInvalidRule, r, year, fmt.Sprintf(
			"base holiday %q has type %q; relative rules support fixed, nth-weekday, and easter bases",
			base.DisplayName(), base.Type))
		return nil, e.WithDetail("base_type", base.Type)
	}

	baseDates, err := baseOccurrence(base, year, rctx)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(baseDates))
	for _, d := range baseDates {
		dates = append(dates, d.AddDate(0, 0, r.Relative.Offset))
	}
	return dates, nil
}

// baseOccurrence computes the base rule's raw dates, memoized per
// (base identity, year) so sibling relative rules sharing a base do not
// recompute it. Observance and duration of the base rule do not apply;
// the offset anchors on the holiday's own date.
func baseOccurrence(base *rule.Rule, year int, rctx *Context) ([]time.Time, error) {
	key := rule.Key(base) + "|" + strconv.Itoa(year)
	if dates, ok := rctx.baseMemo[key]; ok {
		return dates, nil
	}
	dates, err := rctx.Registry.Calculate(base, year, rctx)
	if err != nil {
		return nil, err
	}
	rctx.baseMemo[key] = dates
	return dates, nil
}

// findBase resolves a base reference: exact name match first, then exact
// id, then case-insensitive name.
func findBase(rules []*rule.Rule, target string) *rule.Rule {
	for _, r := range rules {
		if r.Name == target {
			return r
		}
	}
	for _, r := range rules {
		if r.ID != "" && r.ID == target {
			return r
		}
	}
	for _, r := range rules {
		if namesEqual(r.Name, target) {
			return r
		}
	}
	return nil
}

// namesEqual compares holiday names case-insensitively after NFC
// normalization, so decomposed and precomposed spellings match.
func namesEqual(a, b string) bool {
	return strings.EqualFold(norm.NFC.String(a), norm.NFC.String(b))
}
