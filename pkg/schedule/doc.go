/*
Package schedule computes when a job should next execute.

A Schedule is derived from a composed interval and comes in two kinds:
periodic (recurs indefinitely) and once (fires a single time, then is
exhausted). Both validate that the source interval is strictly positive
at construction time, so a zero-length schedule can never reach the
engine.

	sched, err := schedule.Periodic(interval.Every(5, interval.Minutes).And(30, interval.Seconds))

Schedules are inert until Start anchors them at registration time. From
then on IsDue/NextDue answer against explicit instants, which keeps the
policy independent of any real clock:

	sched.Start(t0)
	sched.IsDue(t0.Add(330 * time.Second)) // true

The catch-up policy after a pause is anchor-to-fire-time: Advance sets
the next due time relative to the instant the job actually fired, so a
stalled engine causes at most one firing per tick rather than a burst.

Parse accepts "@every 5m30s" and "@once 10s" spec strings for callers
that configure schedules from text.
*/
package schedule
