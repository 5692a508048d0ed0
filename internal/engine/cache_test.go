package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersinkoc/kairos/internal/rule"
)

func TestRuleCache_GetPutClear(t *testing.T) {
	c := newRuleCache()

	_, ok := c.Get("christmas", 2024)
	assert.False(t, ok)

	dates := []time.Time{rule.Date(2024, time.December, 25)}
	c.Put("christmas", 2024, dates)

	got, ok := c.Get("christmas", 2024)
	require.True(t, ok)
	assert.Equal(t, dates, got)
	assert.Equal(t, 1, c.Len())

	c.Put("christmas", 2025, []time.Time{rule.Date(2025, time.December, 25)})
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("christmas", 2024)
	assert.False(t, ok)
}

func TestRuleCache_YearsAreIndependent(t *testing.T) {
	c := newRuleCache()
	c.Put("k", 2024, []time.Time{rule.Date(2024, time.January, 1)})

	_, ok := c.Get("k", 2025)
	assert.False(t, ok)
}

func TestRuleCache_EmptySliceIsACachedValue(t *testing.T) {
	// A rule with no occurrence this year (Feb 29) caches its empty result.
	c := newRuleCache()
	c.Put("leap", 2023, []time.Time{})

	got, ok := c.Get("leap", 2023)
	require.True(t, ok)
	assert.Empty(t, got)
}
