package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ersinkoc/kairos/internal/rule"
)

func TestExpandDuration_ThreeConsecutiveDays(t *testing.T) {
	start := rule.Date(2024, time.April, 29)

	out := expandDuration([]time.Time{start}, 3)
	assert.Equal(t, []time.Time{
		start,
		rule.Date(2024, time.April, 30),
		rule.Date(2024, time.May, 1),
	}, out)
}

func TestExpandDuration_BelowTwoIsIdentity(t *testing.T) {
	dates := []time.Time{rule.Date(2024, time.January, 1)}
	assert.Equal(t, dates, expandDuration(dates, 0))
	assert.Equal(t, dates, expandDuration(dates, 1))
}

func TestExpandDuration_MultipleStarts(t *testing.T) {
	a := rule.Date(2024, time.January, 1)
	b := rule.Date(2024, time.July, 1)

	out := expandDuration([]time.Time{a, b}, 2)
	assert.Equal(t, []time.Time{
		a, rule.Date(2024, time.January, 2),
		b, rule.Date(2024, time.July, 2),
	}, out)
}

func TestExpandDuration_CrossesYearBoundary(t *testing.T) {
	out := expandDuration([]time.Time{rule.Date(2024, time.December, 31)}, 2)
	assert.Equal(t, rule.Date(2025, time.January, 1), out[1])
}
