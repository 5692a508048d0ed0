package calc

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersinkoc/kairos/internal/rule"
)

func customRule(funcName string) *rule.Rule {
	return &rule.Rule{Name: "Company Day", Type: rule.TypeCustom,
		Custom: &rule.CustomRule{Func: funcName}}
}

func TestCustom_RegisteredFunc(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("company-day", func(year int, _ *Context) ([]time.Time, error) {
		return []time.Time{rule.Date(year, time.June, 1)}, nil
	})

	dates, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("company-day"), 2024, nil)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, rule.Date(2024, time.June, 1), dates[0])
}

func TestCustom_UnregisteredFunc(t *testing.T) {
	_, err := CustomCalculator{Funcs: NewFuncTable()}.Calculate(customRule("nope"), 2024, nil)
	require.Error(t, err)
	assert.True(t, rule.IsCustomRuleError(err))

	var re *rule.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "nope", re.Details["func"])
	assert.Equal(t, "Company Day", re.RuleName)
}

func TestCustom_ErrorReturnIsWrapped(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("broken", func(int, *Context) ([]time.Time, error) {
		return nil, errors.New("lookup table exhausted")
	})

	_, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("broken"), 2024, nil)
	require.Error(t, err)
	assert.True(t, rule.IsCustomRuleError(err))
	assert.Contains(t, err.Error(), "lookup table exhausted")
}

func TestCustom_PanicIsCaughtAndAttributed(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("panics", func(int, *Context) ([]time.Time, error) {
		panic("index out of range")
	})

	dates, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("panics"), 2024, nil)
	require.Error(t, err, "panic must surface as an error, not escape")
	assert.Nil(t, dates)
	assert.True(t, rule.IsCustomRuleError(err))
	assert.Contains(t, err.Error(), "index out of range")
}

func TestCustom_ZeroDateRejected(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("zero", func(int, *Context) ([]time.Time, error) {
		return []time.Time{{}}, nil
	})

	_, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("zero"), 2024, nil)
	require.Error(t, err)
	assert.True(t, rule.IsCustomRuleError(err))
}

func TestCustom_ResultsNormalizedToMidnightUTC(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("noon-local", func(year int, _ *Context) ([]time.Time, error) {
		loc := time.FixedZone("X", 3*3600)
		return []time.Time{time.Date(year, time.June, 1, 12, 30, 0, 0, loc)}, nil
	})

	dates, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("noon-local"), 2024, nil)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, rule.Date(2024, time.June, 1), dates[0])
}

func TestCustom_MultipleDates(t *testing.T) {
	funcs := NewFuncTable()
	funcs.Register("pair", func(year int, _ *Context) ([]time.Time, error) {
		return []time.Time{
			rule.Date(year, time.January, 2),
			rule.Date(year, time.January, 3),
		}, nil
	})

	dates, err := CustomCalculator{Funcs: funcs}.Calculate(customRule("pair"), 2024, nil)
	require.NoError(t, err)
	assert.Len(t, dates, 2)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("x", FixedCalculator{})
	reg.Register("x", NthWeekdayCalculator{})

	assert.IsType(t, NthWeekdayCalculator{}, reg.Lookup("x"))
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := NewDefaultRegistry(NewFuncTable())
	r := &rule.Rule{Name: "Solstice", Type: "solstice"}

	_, err := reg.Calculate(r, 2024, nil)
	require.Error(t, err)
	assert.True(t, rule.IsUnknownType(err))
}
