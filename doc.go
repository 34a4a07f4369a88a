/*
Package recur provides a Go library for scheduling recurring and one-shot
jobs from human-friendly interval specifications.

Intervals (pkg/interval):
  - fluent composition of (count, unit) pairs: Every(5, interval.Minutes).And(30, interval.Seconds)

Schedules (pkg/schedule):
  - Periodic: recurring, anchored to the actual fire time
  - Once: single firing after a delay, then exhausted
  - Parse: "@every 5m30s" / "@once 10s" spec strings

Scheduling (pkg/scheduler):
  - Scheduler: due-time computation, deterministic tick/dispatch loop
  - Clock: pluggable time source for testing
  - optional worker-pool dispatch and Prometheus metrics

Worker Pool (pkg/workerpool):
  - bounded, non-blocking background execution for job actions

Example usage:

	import (
		"github.com/vnykmshr/recur/pkg/interval"
		"github.com/vnykmshr/recur/pkg/schedule"
		"github.com/vnykmshr/recur/pkg/scheduler"
	)

	sched, _ := schedule.Periodic(interval.Every(5, interval.Minutes).And(30, interval.Seconds))
	job, _ := scheduler.NewJob(sched, scheduler.ActionFunc(func(ctx context.Context) error {
		fmt.Println("hello")
		return nil
	}))

	s := scheduler.New()
	s.Add(job)
	s.Run(ctx)
*/
package recur
