package interval

import (
	"fmt"
	"math"
	"strings"
	"time"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
)

// Unit is an enumerated time unit used to compose intervals.
type Unit int

// Supported units, smallest first.
const (
	Milliseconds Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
)

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	case Weeks:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

type pair struct {
	count uint64
	unit  Unit
}

// Interval is an accumulated duration built by composing (count, unit)
// pairs. It is an immutable value: And returns a new Interval and never
// mutates the receiver. A construction error (zero count, unknown unit)
// is carried with the value and surfaced when the interval is consumed,
// so chains stay fluent without panicking.
type Interval struct {
	pairs []pair
	err   error
}

// New returns an empty interval. Its total duration is zero, which makes
// it invalid as a schedule source until at least one pair is added.
func New() Interval {
	return Interval{}
}

// Every starts a fluent chain with a single (count, unit) pair.
func Every(count uint64, unit Unit) Interval {
	return New().And(count, unit)
}

// And returns a new interval with the pair appended. A zero count or an
// unknown unit is recorded as a construction error; the first error in a
// chain wins.
func (iv Interval) And(count uint64, unit Unit) Interval {
	if iv.err != nil {
		return iv
	}
	if count == 0 {
		return Interval{err: fmt.Errorf("and %d %s: %w", count, unit, recurerrors.ErrInvalidCount)}
	}
	if unit.Duration() <= 0 {
		return Interval{err: recurerrors.NewValidationError("interval", "unit", unit, "unknown unit").
			WithHint("use one of the interval.Unit constants")}
	}

	pairs := make([]pair, len(iv.pairs), len(iv.pairs)+1)
	copy(pairs, iv.pairs)
	pairs = append(pairs, pair{count: count, unit: unit})
	return Interval{pairs: pairs}
}

// Err returns the construction error recorded during chaining, if any.
func (iv Interval) Err() error {
	return iv.err
}

// Len returns the number of composed pairs.
func (iv Interval) Len() int {
	return len(iv.pairs)
}

// TotalDuration returns the arithmetic sum of all pairs' durations.
// It fails with ErrDurationOverflow when any pair's product or the
// running sum would exceed the representable duration range, and with
// the recorded construction error when the chain was malformed.
func (iv Interval) TotalDuration() (time.Duration, error) {
	if iv.err != nil {
		return 0, iv.err
	}

	var total time.Duration
	for _, p := range iv.pairs {
		unitDur := p.unit.Duration()
		if p.count > uint64(math.MaxInt64)/uint64(unitDur) {
			return 0, fmt.Errorf("%d %s: %w", p.count, p.unit, recurerrors.ErrDurationOverflow)
		}
		add := time.Duration(p.count) * unitDur
		if add > math.MaxInt64-total {
			return 0, fmt.Errorf("%d %s: %w", p.count, p.unit, recurerrors.ErrDurationOverflow)
		}
		total += add
	}
	return total, nil
}

// String renders the interval the way it was composed, e.g.
// "every 5 minutes and 30 seconds".
func (iv Interval) String() string {
	if iv.err != nil {
		return "invalid interval"
	}
	if len(iv.pairs) == 0 {
		return "empty interval"
	}

	parts := make([]string, 0, len(iv.pairs))
	for _, p := range iv.pairs {
		parts = append(parts, fmt.Sprintf("%d %s", p.count, p.unit))
	}
	return "every " + strings.Join(parts, " and ")
}
