package engine

import (
	"time"

	"github.com/ersinkoc/kairos/internal/calc"
	"github.com/ersinkoc/kairos/internal/rule"
)

// Engine is the holiday engine facade.
//
// An Engine owns its calculator registry, custom function table, and rule
// cache; constructing two engines gives two fully independent instances.
//
// INVARIANTS:
//   - Calculators are referentially transparent, so a cache hit equals a
//     fresh calculation.
//   - Batch queries evaluate rules in list order and abort on the first
//     rule failure.
type Engine struct {
	registry *calc.Registry
	funcs    *calc.FuncTable
	cache    *ruleCache
	tokens   TokenGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithTokenGenerator replaces the query token generator. Tests use
// NewFixedGenerator for deterministic diagnostics.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(e *Engine) { e.tokens = g }
}

// New creates an Engine with the six built-in calculators registered and
// an empty cache.
func New(opts ...Option) *Engine {
	funcs := calc.NewFuncTable()
	e := &Engine{
		registry: calc.NewDefaultRegistry(funcs),
		funcs:    funcs,
		cache:    newRuleCache(),
		tokens:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterCalculator associates a rule type tag with a calculator
// implementation. Last registration wins.
func (e *Engine) RegisterCalculator(typeTag string, c calc.Calculator) {
	e.registry.Register(typeTag, c)
}

// RegisterCustomFunc registers a named calculation function for custom
// rules. Last registration wins.
func (e *Engine) RegisterCustomFunc(name string, fn calc.CustomFunc) {
	e.funcs.Register(name, fn)
}

// Calculate computes a single rule's dates for a year through the full
// pipeline. The rule is calculated standalone: relative rules need a rule
// set and therefore fail here with MISSING_BASE_HOLIDAY; use the batch
// queries for rules that reference other holidays.
func (e *Engine) Calculate(r *rule.Rule, year int) ([]time.Time, error) {
	return e.calculate(r, year, calc.NewContext(nil, e.registry))
}

// calculate is the cached pipeline: validate, look up the memo, then
// dispatch -> adjust -> expand and store.
//
// The cached slice is returned by reference; callers must not mutate it.
func (e *Engine) calculate(r *rule.Rule, year int, rctx *calc.Context) ([]time.Time, error) {
	if err := rule.Validate(r); err != nil {
		return nil, err
	}

	key := rule.Key(r)
	if dates, ok := e.cache.Get(key, year); ok {
		return dates, nil
	}

	raw, err := e.registry.Calculate(r, year, rctx)
	if err != nil {
		return nil, err
	}
	dates := expandDuration(applyObservance(raw, r.Observed), r.Duration)

	e.cache.Put(key, year, dates)
	return dates, nil
}

// ClearCache drops every cached (rule, year) entry.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheLen returns the number of cached (rule, year) entries. Exposed so
// hosts can monitor the cache's known unbounded-growth concern.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}
