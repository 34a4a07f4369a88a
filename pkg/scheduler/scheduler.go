package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
	"github.com/vnykmshr/recur/pkg/metrics"
	"github.com/vnykmshr/recur/pkg/workerpool"
)

// Scheduler owns a collection of jobs and decides, for a given instant,
// which of them fire and how they are rescheduled afterward.
type Scheduler interface {
	// Add registers a job and returns its identifier. The scheduler
	// takes ownership; the job's schedule is anchored at the current
	// clock instant. A sleeping run loop is woken so a job due sooner
	// than the current wake target is not missed.
	Add(job *Job) (JobID, error)

	// Cancel removes a job. It is idempotent: unknown or already-reaped
	// ids are a no-op, never an error.
	Cancel(id JobID)

	// Tick fires every job due at or before now, in ascending JobID
	// order, exactly once per due crossing. Jobs whose schedule is
	// exhausted afterwards are removed. It returns the ids fired.
	Tick(now time.Time) []JobID

	// NextWake returns the earliest next-due instant across pending
	// jobs, or false when nothing is pending.
	NextWake() (time.Time, bool)

	// Run drives the tick loop until ctx is done. It returns nil on
	// graceful shutdown and an error only on an unrecoverable scheduler
	// fault. This is the only place the engine blocks.
	Run(ctx context.Context) error

	// Start runs the loop on a background goroutine.
	Start() error

	// Stop cancels a started loop and returns a channel that closes
	// once the loop has exited.
	Stop() <-chan struct{}

	// List snapshots all live jobs in ascending id order.
	List() []JobInfo

	// Job snapshots a single job by id.
	Job(id JobID) (JobInfo, bool)
}

// Config holds scheduler configuration.
type Config struct {
	// Clock is the time source. Defaults to SystemClock.
	Clock Clock

	// Logger receives engine events. Defaults to a no-op logger.
	Logger zerolog.Logger

	// Pool, when set, dispatches job actions onto workers instead of
	// running them inline. A job is never re-entered while a previous
	// invocation is still running.
	Pool workerpool.Pool

	// MaxJobs caps the live collection (default: 10000).
	MaxJobs int
}

type scheduler struct {
	clock   Clock
	log     zerolog.Logger
	pool    workerpool.Pool
	maxJobs int

	// metrics are nil unless a metrics-enabled constructor was used.
	metrics *metrics.Registry
	name    string

	mu     sync.Mutex
	jobs   map[JobID]*Job
	nextID JobID

	wake chan struct{}

	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a scheduler with default configuration.
func New() Scheduler {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a scheduler with custom configuration.
func NewWithConfig(cfg Config) Scheduler {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	maxJobs := cfg.MaxJobs
	if maxJobs <= 0 {
		maxJobs = 10000
	}

	return &scheduler{
		clock:   clock,
		log:     cfg.Logger,
		pool:    cfg.Pool,
		maxJobs: maxJobs,
		name:    "default",
		jobs:    make(map[JobID]*Job),
		wake:    make(chan struct{}, 1),
	}
}

func (s *scheduler) Add(job *Job) (JobID, error) {
	if job == nil {
		return 0, fmt.Errorf("add: job cannot be nil")
	}

	s.mu.Lock()
	if job.id != 0 {
		s.mu.Unlock()
		return 0, fmt.Errorf("add: job %d is already registered", job.id)
	}
	if len(s.jobs) >= s.maxJobs {
		s.mu.Unlock()
		return 0, fmt.Errorf("add: %d jobs: %w", s.maxJobs, recurerrors.ErrCapacityExceeded)
	}

	s.nextID++
	job.id = s.nextID
	job.sched.Start(s.clock.Now())
	s.jobs[job.id] = job
	pending := len(s.jobs)
	s.mu.Unlock()

	s.log.Debug().
		Uint64("job_id", uint64(job.id)).
		Str("name", job.name).
		Stringer("schedule", job.sched).
		Msg("job registered")
	s.observeAdd(pending)

	// Wake the loop in case this job is due sooner than the current
	// sleep target.
	s.notify()
	return job.id, nil
}

func (s *scheduler) Cancel(id JobID) {
	s.mu.Lock()
	_, exists := s.jobs[id]
	if exists {
		delete(s.jobs, id)
	}
	pending := len(s.jobs)
	s.mu.Unlock()

	if exists {
		s.log.Debug().Uint64("job_id", uint64(id)).Msg("job cancelled")
		s.observeCancel(pending)
		s.notify()
	}
}

func (s *scheduler) Tick(now time.Time) []JobID {
	start := time.Now()

	s.mu.Lock()
	if len(s.jobs) == 0 {
		s.mu.Unlock()
		return nil
	}

	// Deterministic order: ascending JobID.
	ids := make([]JobID, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fired := make([]JobID, 0, len(ids))
	var inline []*Job
	var reaped int

	for _, id := range ids {
		job := s.jobs[id]
		if !job.sched.IsDue(now) {
			continue
		}

		if s.pool != nil {
			if s.dispatch(job, now) {
				fired = append(fired, id)
			}
		} else {
			// Advance under the lock; the action itself runs after
			// release so it may call back into the scheduler.
			job.sched.Advance(now)
			inline = append(inline, job)
			fired = append(fired, id)
		}

		// A dropped dispatch also advances the schedule, so a once job
		// can be exhausted here without having fired.
		if job.sched.Exhausted() {
			delete(s.jobs, id)
			reaped++
		}
	}
	pending := len(s.jobs)
	s.mu.Unlock()

	for _, job := range inline {
		err := job.execute(context.Background())
		job.recordRun(err)
		if err != nil {
			s.log.Error().
				Err(err).
				Uint64("job_id", uint64(job.id)).
				Str("name", job.name).
				Msg("job action failed")
			s.observeFailure()
		}
	}

	s.observeTick(time.Since(start), len(fired), reaped, pending)
	return fired
}

// dispatch submits one due job to the worker pool. It reports whether a
// firing was actually consumed; a job whose previous invocation is still
// in flight stays due and is retried on a later tick. The caller holds
// the scheduler lock.
func (s *scheduler) dispatch(job *Job, now time.Time) bool {
	if !job.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().
			Uint64("job_id", uint64(job.id)).
			Msg("previous invocation still running, firing delayed")
		return false
	}

	err := s.pool.Submit(workerpool.TaskFunc(func(ctx context.Context) error {
		defer func() {
			job.inFlight.Store(false)
			s.notify()
		}()

		runErr := job.execute(ctx)
		job.recordRun(runErr)
		if runErr != nil {
			s.log.Error().
				Err(runErr).
				Uint64("job_id", uint64(job.id)).
				Str("name", job.name).
				Msg("job action failed")
			s.observeFailure()
		}
		return runErr
	}))
	if err != nil {
		// Bounded-queue overflow or a shut-down pool: drop this firing,
		// record it, and keep the engine live.
		job.inFlight.Store(false)
		job.recordDrop(err)
		s.log.Warn().
			Err(err).
			Uint64("job_id", uint64(job.id)).
			Str("name", job.name).
			Msg("job dispatch dropped")
		s.observeDrop()
		job.sched.Advance(now)
		return false
	}

	job.sched.Advance(now)
	return true
}

func (s *scheduler) NextWake() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var min time.Time
	found := false
	for _, job := range s.jobs {
		// An in-flight job's next eligibility is unknown until its
		// invocation completes; completion wakes the loop.
		if job.inFlight.Load() {
			continue
		}
		next, ok := job.sched.NextDue()
		if !ok {
			continue
		}
		if !found || next.Before(min) {
			min = next
			found = true
		}
	}
	return min, found
}

func (s *scheduler) Run(ctx context.Context) error {
	if s.clock == nil {
		return fmt.Errorf("run: %w", recurerrors.ErrClockUnavailable)
	}
	if err := s.acquireLoop(); err != nil {
		return err
	}
	defer s.releaseLoop()
	return s.loop(ctx)
}

// acquireLoop claims exclusive ownership of the run loop.
func (s *scheduler) acquireLoop() error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	s.running = true
	return nil
}

func (s *scheduler) releaseLoop() {
	s.runMu.Lock()
	s.running = false
	s.runMu.Unlock()
}

func (s *scheduler) loop(ctx context.Context) error {
	s.log.Info().Msg("scheduler loop started")
	defer s.log.Info().Msg("scheduler loop stopped")

	for {
		now := s.clock.Now()
		if now.IsZero() {
			// A broken clock source is fatal: no job-level recovery is
			// meaningful without a usable notion of "now".
			return fmt.Errorf("run: %w", recurerrors.ErrClockUnavailable)
		}

		s.Tick(now)

		// Sleep until the earliest pending due time, a registration, or
		// shutdown. With no pending jobs the wait channel is nil and
		// the select blocks until Add wakes it.
		var wait <-chan time.Time
		if next, ok := s.NextWake(); ok {
			d := next.Sub(s.clock.Now())
			if d < 0 {
				d = 0
			}
			wait = s.clock.After(d)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
		case <-wait:
		}
	}
}

func (s *scheduler) Start() error {
	s.runMu.Lock()
	if s.running {
		s.runMu.Unlock()
		return fmt.Errorf("start: scheduler already running")
	}
	s.running = true
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.runMu.Unlock()

	go func() {
		defer close(done)
		defer s.releaseLoop()
		if err := s.loop(ctx); err != nil {
			s.log.Error().Err(err).Msg("scheduler loop failed")
		}
	}()
	return nil
}

func (s *scheduler) Stop() <-chan struct{} {
	s.runMu.Lock()
	cancel := s.cancel
	done := s.done
	s.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return done
}

func (s *scheduler) List() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for _, job := range s.jobs {
		infos = append(infos, job.info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

func (s *scheduler) Job(id JobID) (JobInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return JobInfo{}, false
	}
	return job.info(), true
}

// notify nudges a sleeping run loop without blocking.
func (s *scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
