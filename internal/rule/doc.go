// Package rule provides the declarative holiday rule types for Kairos.
//
// This package contains type definitions, shape validation, and identity
// computation only. All other internal packages import rule; rule imports
// nothing internal. This keeps the rule model the foundational layer with
// no circular dependencies.
//
// Key design constraints:
//   - Rules are plain data. A custom rule stores the NAME of a registered
//     function, never a closure, so rule sets stay serializable.
//   - Dates are calendar dates: time.Time at midnight UTC. Nothing in this
//     module is timezone-aware.
//   - Rule identity uses the rule name when present, otherwise a
//     content-addressed hash of (type, payload). Distinct unnamed rules
//     never collide on a cache key.
package rule
