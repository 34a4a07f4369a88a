package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the recur library

var (
	// ErrInvalidCount indicates an interval pair was built with a zero count
	ErrInvalidCount = errors.New("count must be positive")

	// ErrZeroDuration indicates a schedule was derived from a zero-length interval
	ErrZeroDuration = errors.New("interval duration is zero")

	// ErrDurationOverflow indicates an interval sum exceeds the representable duration range
	ErrDurationOverflow = errors.New("interval duration overflows")

	// ErrCalendarSpec indicates a schedule spec used calendar cron fields,
	// which the engine does not support
	ErrCalendarSpec = errors.New("calendar cron specs are not supported")

	// ErrNilSchedule indicates a job was built without a schedule
	ErrNilSchedule = errors.New("schedule cannot be nil")

	// ErrNilAction indicates a job was built without an action
	ErrNilAction = errors.New("action cannot be nil")

	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrQueueFull indicates a bounded dispatch queue rejected a submission
	ErrQueueFull = errors.New("dispatch queue is full")

	// ErrCapacityExceeded indicates that a capacity limit was exceeded
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrClockUnavailable indicates the scheduler's clock source failed
	ErrClockUnavailable = errors.New("clock source unavailable")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsConstruction returns true if the error was raised while building an
// interval, schedule, or job. Construction errors are always recoverable
// by the caller and are never raised at tick time.
func IsConstruction(err error) bool {
	return errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrZeroDuration) ||
		errors.Is(err, ErrDurationOverflow) ||
		errors.Is(err, ErrCalendarSpec) ||
		errors.Is(err, ErrNilSchedule) ||
		errors.Is(err, ErrNilAction)
}

// IsTemporary returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsTemporary(err error) bool {
	return errors.Is(err, ErrQueueFull) || errors.Is(err, ErrCapacityExceeded)
}

// ValidationError describes a rejected construction or configuration value.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is checks against ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
