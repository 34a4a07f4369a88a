/*
Package workerpool provides a bounded worker pool for background
execution of job actions.

The pool is built for dispatch from a scheduling loop, so submission is
strictly non-blocking: a full queue rejects with ErrQueueFull instead of
stalling the submitter. Panics inside tasks are recovered and surfaced
as errors on the Results channel.

	pool := workerpool.New(4, 64)
	defer func() { <-pool.Shutdown() }()

	pool.Submit(workerpool.TaskFunc(func(ctx context.Context) error {
		// do work
		return nil
	}))

Result delivery is best-effort; callers that want per-task outcomes
should drain Results, and callers that don't can ignore it without
blocking the workers.
*/
package workerpool
