package rule

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes calculation errors.
type ErrorCode string

const (
	// ErrCodeUnknownType indicates rule.Type has no registered calculator.
	ErrCodeUnknownType ErrorCode = "UNKNOWN_HOLIDAY_TYPE"

	// ErrCodeInvalidRule indicates the rule failed shape validation before
	// calculation.
	ErrCodeInvalidRule ErrorCode = "INVALID_HOLIDAY_RULE"

	// ErrCodeUnsatisfiable indicates the rule has no valid date in the
	// requested month/year (e.g., a 5th Monday that does not exist).
	ErrCodeUnsatisfiable ErrorCode = "RULE_UNSATISFIABLE"

	// ErrCodeCircularDependency indicates a relative-rule cycle.
	ErrCodeCircularDependency ErrorCode = "CIRCULAR_DEPENDENCY"

	// ErrCodeCustomRule wraps any failure or bad return from a custom
	// calculator function.
	ErrCodeCustomRule ErrorCode = "CUSTOM_RULE_ERROR"

	// ErrCodeMissingBase indicates a relative rule's target is absent from
	// the supplied rule set.
	ErrCodeMissingBase ErrorCode = "MISSING_BASE_HOLIDAY"
)

// Error represents a holiday calculation error.
//
// Every error surfaces synchronously to the immediate caller and carries
// enough context (rule name/id, year, violated constraint) to diagnose the
// offending configuration. Nothing is swallowed or downgraded.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// RuleName identifies the affected rule (may be empty for unnamed rules).
	RuleName string

	// RuleID identifies the affected rule by id when the name is absent.
	RuleID string

	// Year is the calculation year, when relevant.
	Year int

	// Details contains additional context, such as the violated constraint
	// or the dependency chain of a cycle.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.RuleName != "" && e.Year != 0:
		return fmt.Sprintf("%s: %s (rule=%s, year=%d)", e.Code, e.Message, e.RuleName, e.Year)
	case e.RuleName != "":
		return fmt.Sprintf("%s: %s (rule=%s)", e.Code, e.Message, e.RuleName)
	case e.Year != 0:
		return fmt.Sprintf("%s: %s (year=%d)", e.Code, e.Message, e.Year)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail attaches a key/value pair to the error and returns it.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// IsCode returns true if err is (or wraps) an Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// IsUnknownType reports an unregistered rule type error.
func IsUnknownType(err error) bool { return IsCode(err, ErrCodeUnknownType) }

// IsInvalidRule reports a shape validation error.
func IsInvalidRule(err error) bool { return IsCode(err, ErrCodeInvalidRule) }

// IsUnsatisfiable reports a rule with no valid date in its month/year.
func IsUnsatisfiable(err error) bool { return IsCode(err, ErrCodeUnsatisfiable) }

// IsCircularDependency reports a relative-rule cycle.
func IsCircularDependency(err error) bool { return IsCode(err, ErrCodeCircularDependency) }

// IsCustomRuleError reports a wrapped custom calculator failure.
func IsCustomRuleError(err error) bool { return IsCode(err, ErrCodeCustomRule) }

// IsMissingBase reports an unresolvable relative-rule target.
func IsMissingBase(err error) bool { return IsCode(err, ErrCodeMissingBase) }

// NewError creates an Error for the given rule, code, and message.
func NewError(code ErrorCode, r *Rule, year int, message string) *Error {
	e := &Error{Code: code, Message: message, Year: year}
	if r != nil {
		e.RuleName = r.Name
		e.RuleID = r.ID
	}
	return e
}

// NewUnknownTypeError creates an Error for an unregistered rule type.
func NewUnknownTypeError(r *Rule, year int) *Error {
	return NewError(ErrCodeUnknownType, r, year,
		fmt.Sprintf("no calculator registered for rule type %q", r.Type))
}

// NewCircularDependencyError creates an Error carrying the full dependency
// chain, e.g. "A -> B -> A".
func NewCircularDependencyError(r *Rule, year int, chain []string) *Error {
	e := NewError(ErrCodeCircularDependency, r, year,
		"relative holiday rules form a cycle")
	return e.WithDetail("chain", joinChain(chain))
}

func joinChain(chain []string) string {
	out := ""
	for i, name := range chain {
		if i > 0 {
			out += " -> "
		}
		out += name
	}
	return out
}
