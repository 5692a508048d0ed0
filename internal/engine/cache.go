package engine

import "time"

// ruleCache is the two-level memo around the calculation pipeline: outer
// key is rule identity, inner key is the year, value is the exact
// post-adjustment, post-expansion date slice.
//
// Hits return the stored slice by reference; callers must not mutate it.
type ruleCache struct {
	entries map[string]map[int][]time.Time
}

func newRuleCache() *ruleCache {
	return &ruleCache{entries: make(map[string]map[int][]time.Time)}
}

// Get returns the cached dates for (key, year), if present.
func (c *ruleCache) Get(key string, year int) ([]time.Time, bool) {
	years, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	dates, ok := years[year]
	return dates, ok
}

// Put stores the dates for (key, year).
func (c *ruleCache) Put(key string, year int, dates []time.Time) {
	years, ok := c.entries[key]
	if !ok {
		years = make(map[int][]time.Time)
		c.entries[key] = years
	}
	years[year] = dates
}

// Clear drops every entry.
func (c *ruleCache) Clear() {
	c.entries = make(map[string]map[int][]time.Time)
}

// Len returns the number of cached (rule, year) entries.
func (c *ruleCache) Len() int {
	n := 0
	for _, years := range c.entries {
		n += len(years)
	}
	return n
}
