// Package locale supplies holiday rule sets.
//
// Built-in sets (United States federal, German NRW) are plain rule lists,
// the same shape any host would hand to the engine. LoadFile reads ad-hoc
// rule sets from YAML, vetting the decoded document against a CUE schema
// before converting, so malformed files fail with positions instead of
// surfacing later as calculation errors.
package locale
