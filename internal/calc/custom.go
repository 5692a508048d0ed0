package calc

import (
	"fmt"
	"time"

	"github.com/ersinkoc/kairos/internal/rule"
)

// CustomFunc is a user-supplied holiday calculation. It receives the target
// year and the resolution context of the enclosing query.
//
// Rules reference a CustomFunc by registered name, never by closure, so
// rule sets stay plain serializable data.
type CustomFunc func(year int, rctx *Context) ([]time.Time, error)

// FuncTable is the named-function registry for custom rules.
type FuncTable struct {
	funcs map[string]CustomFunc
}

// NewFuncTable creates an empty function table.
func NewFuncTable() *FuncTable {
	return &FuncTable{funcs: make(map[string]CustomFunc)}
}

// Register associates a name with a function. Last registration wins.
func (t *FuncTable) Register(name string, fn CustomFunc) {
	t.funcs[name] = fn
}

// Lookup returns the function registered under name, or nil.
func (t *FuncTable) Lookup(name string) CustomFunc {
	return t.funcs[name]
}

// CustomCalculator invokes user-registered calculation functions.
//
// Every failure mode - unregistered name, returned error, panic, invalid
// dates - surfaces as a CUSTOM_RULE_ERROR naming the offending rule. No
// bare, unattributed failure escapes.
type CustomCalculator struct {
	Funcs *FuncTable
}

// Calculate runs the rule's registered function and normalizes its result.
func (c CustomCalculator) Calculate(r *rule.Rule, year int, rctx *Context) (dates []time.Time, err error) {
	var fn CustomFunc
	if c.Funcs != nil {
		fn = c.Funcs.Lookup(r.Custom.Func)
	}
	if fn == nil {
		e := rule.NewError(rule.ErrCodeCustomRule, r, year,
			fmt.Sprintf("no custom function registered under %q", r.Custom.Func))
		return nil, e.WithDetail("func", r.Custom.Func)
	}

	defer func() {
		if p := recover(); p != nil {
			e := rule.NewError(rule.ErrCodeCustomRule, r, year,
				fmt.Sprintf("custom function %q panicked: %v", r.Custom.Func, p))
			dates, err = nil, e.WithDetail("func", r.Custom.Func)
		}
	}()

	raw, err := fn(year, rctx)
	if err != nil {
		e := rule.NewError(rule.ErrCodeCustomRule, r, year,
			fmt.Sprintf("custom function %q failed: %v", r.Custom.Func, err))
		return nil, e.WithDetail("func", r.Custom.Func)
	}

	dates = make([]time.Time, 0, len(raw))
	for _, d := range raw {
		if d.IsZero() {
			e := rule.NewError(rule.ErrCodeCustomRule, r, year,
				fmt.Sprintf("custom function %q returned a zero date", r.Custom.Func))
			return nil, e.WithDetail("func", r.Custom.Func)
		}
		// Normalize to the engine's calendar-date representation.
		dates = append(dates, rule.Date(d.Year(), d.Month(), d.Day()))
	}
	return dates, nil
}
