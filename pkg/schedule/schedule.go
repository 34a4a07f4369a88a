package schedule

import (
	"fmt"
	"time"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
	"github.com/vnykmshr/recur/pkg/interval"
)

// Kind distinguishes the two due-time policies.
type Kind int

const (
	// KindPeriodic recurs indefinitely; the next due time is anchored to
	// the actual fire time.
	KindPeriodic Kind = iota

	// KindOnce fires a single time after its delay, then is exhausted.
	KindOnce
)

func (k Kind) String() string {
	switch k {
	case KindPeriodic:
		return "periodic"
	case KindOnce:
		return "once"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Schedule is the due-time policy for one job. A schedule is always in
// exactly one of two states: pending (it has a well-defined next due
// time once started) or exhausted (a once schedule that already fired).
//
// Schedules are not safe for concurrent use; the owning scheduler
// serializes access.
type Schedule struct {
	kind      Kind
	interval  time.Duration
	desc      string
	started   bool
	anchor    time.Time
	lastFired time.Time
	fired     bool
}

func newSchedule(kind Kind, d time.Duration, desc string) (*Schedule, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%s: %w", kind, recurerrors.ErrZeroDuration)
	}
	return &Schedule{kind: kind, interval: d, desc: desc}, nil
}

// Periodic derives a recurring schedule from the interval. It fails when
// the interval carries a construction error or sums to zero.
func Periodic(iv interval.Interval) (*Schedule, error) {
	d, err := iv.TotalDuration()
	if err != nil {
		return nil, fmt.Errorf("periodic: %w", err)
	}
	return newSchedule(KindPeriodic, d, iv.String())
}

// Once derives a single-firing schedule from the interval, with the same
// validation as Periodic.
func Once(iv interval.Interval) (*Schedule, error) {
	d, err := iv.TotalDuration()
	if err != nil {
		return nil, fmt.Errorf("once: %w", err)
	}
	return newSchedule(KindOnce, d, "once after "+iv.String())
}

// Start anchors the schedule at its registration time. Subsequent calls
// are no-ops so re-registration cannot shift the first due time.
func (s *Schedule) Start(now time.Time) {
	if !s.started {
		s.started = true
		s.anchor = now
	}
}

// NextDue returns the next instant the schedule becomes due. The second
// return is false when the schedule has not been started yet or is
// exhausted.
func (s *Schedule) NextDue() (time.Time, bool) {
	if !s.started || s.Exhausted() {
		return time.Time{}, false
	}
	if s.kind == KindPeriodic && !s.lastFired.IsZero() {
		return s.lastFired.Add(s.interval), true
	}
	return s.anchor.Add(s.interval), true
}

// IsDue reports whether now has reached or passed the next due time.
func (s *Schedule) IsDue(now time.Time) bool {
	next, ok := s.NextDue()
	return ok && !now.Before(next)
}

// Advance records a firing at now. For periodic schedules the next due
// time becomes now + interval: after a long engine pause the schedule
// re-anchors to the actual fire instant instead of bursting through the
// theoretical missed instants. Once schedules enter the terminal
// exhausted state.
func (s *Schedule) Advance(now time.Time) {
	switch s.kind {
	case KindPeriodic:
		s.lastFired = now
	case KindOnce:
		s.fired = true
	}
}

// Exhausted reports whether a once schedule has already fired.
func (s *Schedule) Exhausted() bool {
	return s.kind == KindOnce && s.fired
}

// Kind returns the schedule's policy kind.
func (s *Schedule) Kind() Kind {
	return s.kind
}

// Interval returns the schedule's accumulated duration.
func (s *Schedule) Interval() time.Duration {
	return s.interval
}

func (s *Schedule) String() string {
	return s.desc
}
