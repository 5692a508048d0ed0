package calc

import (
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// Calculator computes the raw occurrence dates of a rule for a year.
//
// Implementations must be referentially transparent: two calls with equal
// inputs return value-equal slices. Observance adjustment and duration
// expansion happen downstream, in the engine.
type Calculator interface {
	Calculate(r *rule.Rule, year int, rctx *Context) ([]time.Time, error)
}

// Registry maps rule type tags to calculator implementations.
//
// Lookup is pure: there is no ordering dependency between calculators, and
// re-registering a tag replaces the previous implementation (last wins).
type Registry struct {
	calcs map[string]Calculator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{calcs: make(map[string]Calculator)}
}

// NewDefaultRegistry creates a registry with the six built-in calculators.
// The custom calculator resolves function names through the given table.
func NewDefaultRegistry(funcs *FuncTable) *Registry {
	g := NewRegistry()
	g.Register(rule.TypeFixed, FixedCalculator{})
	g.Register(rule.TypeNthWeekday, NthWeekdayCalculator{})
	g.Register(rule.TypeEaster, EasterCalculator{})
	g.Register(rule.TypeLunar, NewLunarCalculator())
	g.Register(rule.TypeRelative, RelativeCalculator{})
	g.Register(rule.TypeCustom, CustomCalculator{Funcs: funcs})
	return g
}

// Register associates a type tag with a calculator. Last registration wins.
func (g *Registry) Register(typeTag string, c Calculator) {
	g.calcs[typeTag] = c
}

// Lookup returns the calculator for a type tag, or nil.
func (g *Registry) Lookup(typeTag string) Calculator {
	return g.calcs[typeTag]
}

// Calculate dispatches by rule type. Unregistered types fail with
// UNKNOWN_HOLIDAY_TYPE.
func (g *Registry) Calculate(r *rule.Rule, year int, rctx *Context) ([]time.Time, error) {
	c := g.Lookup(r.Type)
	if c == nil {
		return nil, rule.NewUnknownTypeError(r, year)
	}
	return c.Calculate(r, year, rctx)
}

// Context carries per-calculation resolution state.
//
// Rules is the full rule set of the enclosing query; relative rules resolve
// their base holiday against it. The visited list and base memo are owned
// by the resolver in relative.go.
type Context struct {
	// Rules is the rule set supplied to the enclosing query. Nil when a
	// rule is calculated standalone; relative rules then fail with
	// MISSING_BASE_HOLIDAY.
	Rules []*rule.Rule

	// Registry computes base occurrences for relative rules. Set by the
	// engine before dispatch.
	Registry *Registry

	// visited is the relative-resolution chain, in visit order. An explicit
	// parameter rather than recursion state so the cycle boundary is
	// testable.
	visited []string

	// baseMemo caches base occurrences per "key|year" across sibling
	// relative rules within one query.
	baseMemo map[string][]time.Time
}

// NewContext creates a resolution context over a rule set.
func NewContext(rules []*rule.Rule, registry *Registry) *Context {
	return &Context{
		Rules:    rules,
		Registry: registry,
		baseMemo: make(map[string][]time.Time),
	}
}
