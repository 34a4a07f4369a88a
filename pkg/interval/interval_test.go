package interval

import (
	"errors"
	"math"
	"testing"
	"time"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
)

func TestUnit_Duration(t *testing.T) {
	tests := []struct {
		unit Unit
		want time.Duration
	}{
		{Milliseconds, time.Millisecond},
		{Seconds, time.Second},
		{Minutes, time.Minute},
		{Hours, time.Hour},
		{Days, 24 * time.Hour},
		{Weeks, 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			if got := tt.unit.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterval_Empty(t *testing.T) {
	iv := New()

	d, err := iv.TotalDuration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Errorf("empty interval duration = %v, want 0", d)
	}
	if iv.Len() != 0 {
		t.Errorf("Len() = %d, want 0", iv.Len())
	}
}

func TestInterval_TotalDuration(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want time.Duration
	}{
		{
			"single pair",
			Every(5, Minutes),
			5 * time.Minute,
		},
		{
			"two pairs",
			Every(5, Minutes).And(30, Seconds),
			5*time.Minute + 30*time.Second,
		},
		{
			"order does not matter",
			Every(30, Seconds).And(5, Minutes),
			5*time.Minute + 30*time.Second,
		},
		{
			"mixed units",
			Every(1, Weeks).And(2, Days).And(3, Hours).And(250, Milliseconds),
			7*24*time.Hour + 2*24*time.Hour + 3*time.Hour + 250*time.Millisecond,
		},
		{
			"repeated unit accumulates",
			Every(1, Seconds).And(1, Seconds).And(1, Seconds),
			3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.iv.TotalDuration()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TotalDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterval_ZeroCount(t *testing.T) {
	iv := Every(0, Seconds)

	if iv.Err() == nil {
		t.Fatal("expected construction error for zero count")
	}
	if _, err := iv.TotalDuration(); !errors.Is(err, recurerrors.ErrInvalidCount) {
		t.Errorf("TotalDuration() error = %v, want ErrInvalidCount", err)
	}

	// The first error in a chain wins and later pairs are ignored.
	iv = Every(5, Minutes).And(0, Seconds).And(1, Hours)
	if _, err := iv.TotalDuration(); !errors.Is(err, recurerrors.ErrInvalidCount) {
		t.Errorf("chained error = %v, want ErrInvalidCount", err)
	}
}

func TestInterval_UnknownUnit(t *testing.T) {
	iv := Every(5, Unit(99))

	if iv.Err() == nil {
		t.Fatal("expected construction error for unknown unit")
	}
	_, err := iv.TotalDuration()
	if !errors.Is(err, recurerrors.ErrInvalidConfiguration) {
		t.Errorf("TotalDuration() error = %v, want ErrInvalidConfiguration", err)
	}
	if !recurerrors.IsValidationError(err) {
		t.Errorf("TotalDuration() error = %v, want a ValidationError", err)
	}
}

func TestInterval_Overflow(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
	}{
		{"single pair product", Every(math.MaxUint64, Weeks)},
		{"product just over range", Every(uint64(math.MaxInt64/int64(time.Second))+1, Seconds)},
		{
			"sum over range",
			Every(uint64(math.MaxInt64/int64(time.Hour)), Hours).And(2, Hours),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.iv.TotalDuration(); !errors.Is(err, recurerrors.ErrDurationOverflow) {
				t.Errorf("TotalDuration() error = %v, want ErrDurationOverflow", err)
			}
		})
	}
}

func TestInterval_Immutable(t *testing.T) {
	base := Every(1, Hours)
	a := base.And(30, Minutes)
	b := base.And(15, Minutes)

	da, err := a.TotalDuration()
	if err != nil {
		t.Fatal(err)
	}
	db, err := b.TotalDuration()
	if err != nil {
		t.Fatal(err)
	}

	if da != time.Hour+30*time.Minute {
		t.Errorf("a = %v, want 1h30m", da)
	}
	if db != time.Hour+15*time.Minute {
		t.Errorf("b = %v, want 1h15m", db)
	}

	dbase, err := base.TotalDuration()
	if err != nil {
		t.Fatal(err)
	}
	if dbase != time.Hour {
		t.Errorf("base mutated by chaining: %v, want 1h", dbase)
	}
}

func TestInterval_String(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want string
	}{
		{"empty", New(), "empty interval"},
		{"single", Every(5, Minutes), "every 5 minutes"},
		{"composed", Every(5, Minutes).And(30, Seconds), "every 5 minutes and 30 seconds"},
		{"invalid", Every(0, Seconds), "invalid interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
