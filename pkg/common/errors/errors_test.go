package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidCount", ErrInvalidCount, "count must be positive"},
		{"ErrZeroDuration", ErrZeroDuration, "interval duration is zero"},
		{"ErrDurationOverflow", ErrDurationOverflow, "interval duration overflows"},
		{"ErrCalendarSpec", ErrCalendarSpec, "calendar cron specs are not supported"},
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrQueueFull", ErrQueueFull, "dispatch queue is full"},
		{"ErrClockUnavailable", ErrClockUnavailable, "clock source unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsConstruction(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid count", ErrInvalidCount, true},
		{"zero duration", ErrZeroDuration, true},
		{"overflow", ErrDurationOverflow, true},
		{"calendar spec", ErrCalendarSpec, true},
		{"nil schedule", ErrNilSchedule, true},
		{"nil action", ErrNilAction, true},
		{"wrapped zero duration", fmt.Errorf("periodic: %w", ErrZeroDuration), true},
		{"queue full", ErrQueueFull, false},
		{"clock unavailable", ErrClockUnavailable, false},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConstruction(tt.err); got != tt.want {
				t.Errorf("IsConstruction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTemporary(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"queue full", ErrQueueFull, true},
		{"capacity exceeded", ErrCapacityExceeded, true},
		{"wrapped queue full", fmt.Errorf("submit: %w", ErrQueueFull), true},
		{"closed error", ErrClosed, false},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTemporary(tt.err); got != tt.want {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "interval",
				Field:  "count",
				Value:  0,
				Reason: "must be positive",
			},
			want: "interval: invalid count=0 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "scheduler",
				Field:  "maxJobs",
				Value:  -1,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "scheduler: invalid maxJobs=-1 (must be positive) - use a value greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
	if !IsValidationError(verr) {
		t.Error("IsValidationError should detect a ValidationError")
	}
	if IsValidationError(errors.New("plain")) {
		t.Error("IsValidationError should reject a plain error")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a positive value")

	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}
	if !strings.Contains(err.Error(), "try using a positive value") {
		t.Errorf("error message should contain the hint, got %q", err.Error())
	}

	// Should return the same instance for chaining
	if result := err.WithHint("new hint"); result != err {
		t.Error("WithHint should return the same instance")
	}
}
