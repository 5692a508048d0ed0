// Package engine implements the Kairos holiday engine facade.
//
// The engine owns the calculator registry, the custom function table, and
// the rule cache, and orchestrates the calculation pipeline:
//
//	dispatch (by rule type) -> observance adjustment -> duration expansion
//
// with a read-through, two-level memo (rule identity, then year) around the
// whole pipeline. On top of that it answers membership, range, and
// next/previous queries across whole rule sets.
//
// ARCHITECTURE:
//
// Everything is a pure in-memory computation: no I/O, no wall clock, no
// suspension points. Calculators are referentially transparent, which is
// the invariant that makes cache hits indistinguishable from fresh
// calculations.
//
// There are no package-level singletons. Each Engine owns its own state, so
// independent instances (one per test, say) never cross-contaminate. The
// engine is single-threaded by contract: the cache and function table are
// shared mutable state with a single logical owner, and a multi-threaded
// host must synchronize around them externally.
//
// Cache entries are append-only until ClearCache. Long-running processes
// querying many distinct unnamed rules across many years grow the cache
// without bound; name your rules (bounding key cardinality) or clear
// periodically.
package engine
