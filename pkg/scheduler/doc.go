/*
Package scheduler decides when registered jobs fire and dispatches their
actions.

A Job binds a Schedule (from pkg/schedule) to an Action. The Scheduler
owns the job collection; on each tick it fires every job due at or
before the given instant, exactly once per due crossing, in ascending
JobID order, then reaps exhausted once jobs.

Basic usage:

	sched, _ := schedule.Periodic(interval.Every(5, interval.Minutes).And(30, interval.Seconds))
	job, _ := scheduler.NewJob(sched, scheduler.ActionFunc(func(ctx context.Context) error {
		return doWork(ctx)
	}), scheduler.WithName("refresh"))

	s := scheduler.New()
	id, _ := s.Add(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Run(ctx); err != nil {
		// unrecoverable scheduler fault, e.g. broken clock source
	}

	s.Cancel(id) // idempotent

The run loop sleeps until the earliest pending due time and is woken
early by Add, so a newly registered job due sooner than the current
sleep target is never missed. A tick that happens long after a due time
still fires everything overdue, once each; periodic schedules then
re-anchor to the actual fire instant rather than bursting through missed
ones.

Action failures, including panics, are recorded per job (Failures,
LastError) and never propagate to the engine: a failing action cannot
stall its own schedule or affect other jobs.

Firing is inline by default. With Config.Pool set, actions are
dispatched onto a worker pool; a job whose previous invocation is still
running is never re-entered, its firing is delayed until the invocation
completes. A full dispatch queue drops the firing, counts it as a
failure, and moves on.

Timing is injected through the Clock interface, so the engine is
testable against explicit instants via Tick and NextWake without any
real sleeping.
*/
package scheduler
