package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
	"github.com/vnykmshr/recur/pkg/schedule"
	"github.com/vnykmshr/recur/pkg/workerpool"
)

// JobID identifies a registered job. IDs are assigned at registration,
// ascend monotonically, and break firing-order ties deterministically.
type JobID uint64

// Action is the unit of work a job executes when due. An action must be
// callable any number of times and must not assume it runs on any
// particular goroutine.
type Action = workerpool.Task

// ActionFunc adapts a plain function to an Action.
type ActionFunc = workerpool.TaskFunc

// Job binds a schedule to an action and tracks its own firing history.
// A job is owned exclusively by the scheduler it is registered into.
type Job struct {
	id     JobID
	name   string
	sched  *schedule.Schedule
	action Action

	// inFlight guards against concurrent re-entry under pool dispatch.
	inFlight atomic.Bool

	mu       sync.Mutex
	timesRun uint64
	failures uint64
	lastErr  error
}

// JobOption configures a job at construction time.
type JobOption func(*Job)

// WithName gives the job a human-readable name for logs and listings.
func WithName(name string) JobOption {
	return func(j *Job) {
		j.name = name
	}
}

// NewJob binds a schedule to an action. Both are required; construction
// errors are always raised here, never at tick time.
func NewJob(sched *schedule.Schedule, action Action, opts ...JobOption) (*Job, error) {
	if sched == nil {
		return nil, fmt.Errorf("new job: %w", recurerrors.ErrNilSchedule)
	}
	if action == nil {
		return nil, fmt.Errorf("new job: %w", recurerrors.ErrNilAction)
	}

	j := &Job{sched: sched, action: action}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// ID returns the identifier assigned at registration, zero beforehand.
func (j *Job) ID() JobID {
	return j.id
}

// Name returns the job's name, empty unless set with WithName.
func (j *Job) Name() string {
	return j.name
}

// IsDue delegates to the job's schedule.
func (j *Job) IsDue(now time.Time) bool {
	return j.sched.IsDue(now)
}

// Exhausted delegates to the job's schedule.
func (j *Job) Exhausted() bool {
	return j.sched.Exhausted()
}

// TimesRun returns how many times the action has been invoked,
// counting failed invocations.
func (j *Job) TimesRun() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.timesRun
}

// Failures returns how many invocations failed, including panics and
// dispatch rejections.
func (j *Job) Failures() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.failures
}

// LastError returns the most recent failure, nil if the job has never
// failed.
func (j *Job) LastError() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastErr
}

// execute invokes the action, converting a panic into an error so a
// misbehaving action can never take down the engine.
func (j *Job) execute(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v\n%s", r, debug.Stack())
		}
	}()
	return j.action.Execute(ctx)
}

// recordRun updates the job's bookkeeping after an invocation attempt.
func (j *Job) recordRun(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.timesRun++
	if err != nil {
		j.failures++
		j.lastErr = err
	}
}

// recordDrop counts a firing the dispatch pool rejected.
func (j *Job) recordDrop(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.failures++
	j.lastErr = err
}

// JobInfo is a point-in-time snapshot of a registered job.
type JobInfo struct {
	ID       JobID
	Name     string
	Kind     schedule.Kind
	NextRun  time.Time
	TimesRun uint64
	Failures uint64
	LastErr  error
}

// info snapshots the job. The caller must hold the scheduler lock so the
// schedule fields are stable.
func (j *Job) info() JobInfo {
	next, _ := j.sched.NextDue()

	j.mu.Lock()
	defer j.mu.Unlock()
	return JobInfo{
		ID:       j.id,
		Name:     j.name,
		Kind:     j.sched.Kind(),
		NextRun:  next,
		TimesRun: j.timesRun,
		Failures: j.failures,
		LastErr:  j.lastErr,
	}
}
