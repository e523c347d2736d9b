/*
errors.go - Error types for the pay period engine

ERROR CATEGORIES:
  1. Out of range - year or month outside the supported bounds (client error)
  2. Invalid argument - a date or time base that cannot be understood (client error)
  3. Invariant violated - no candidate period contains a date; the catalog
     itself is wrong and the caller must not retry

USAGE:

    p, err := payperiod.ForMonth(2300, time.January)
    if errors.Is(err, payperiod.ErrOutOfRange) {
        ...
    }
*/
package payperiod

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrOutOfRange is returned when a year or month is outside the supported bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned for date input that is missing or unparseable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolated is returned when the catalog has no period for a
	// valid date.
	ErrInvariantViolated = errors.New("internal invariant violated")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RangeError reports a value outside [Min, Max].
type RangeError struct {
	Field string // "year" or "month"
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("the %s must be between %d and %d (got %d)", e.Field, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// InputError reports input that could not be turned into a date or time base.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Input, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidArgument
}

// InvariantError reports a date that none of the candidate periods contain.
type InvariantError struct {
	Date    Date
	Pattern int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: no pay period of pattern %d contains %s", e.Pattern, e.Date)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolated
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidArgument)
}

// IsInvariantViolation returns true if the error points at a catalog defect.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolated)
}
