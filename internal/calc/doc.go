// Package calc implements the holiday date calculators.
//
// Each calculator is a pure function of (rule, year, context): no I/O, no
// wall clock, no shared mutable state. Given the same inputs it always
// returns value-equal date slices, which is what makes the engine's
// read-through cache safe.
//
// Dispatch is by rule type tag through a Registry. Registration is open
// (last registration wins) so hosts can override or extend the built-in
// set, but the built-in calculators cover the closed payload union defined
// in the rule package.
//
// The Context threads the full rule set through a calculation so relative
// rules can resolve their base holiday, carries the explicit visited list
// used for cycle detection, and memoizes base occurrences per (base, year)
// so sibling relative rules sharing a base do not recompute it.
package calc
