/*
Package interval provides a fluent value builder for composed durations.

An Interval accumulates (count, unit) pairs and reduces to a single
time.Duration. Values are immutable; each chaining call returns a new
interval, so partial chains can be reused safely:

	base := interval.Every(1, interval.Hours)
	a := base.And(30, interval.Minutes) // 1h30m
	b := base.And(15, interval.Minutes) // 1h15m

Construction errors (a zero count, an unknown unit) are carried with the
value and surfaced by TotalDuration, keeping chains free of intermediate
error checks:

	d, err := interval.Every(5, interval.Minutes).And(30, interval.Seconds).TotalDuration()
	// d == 5*time.Minute + 30*time.Second

Composition order does not affect the result; the sum is checked for
overflow rather than silently wrapping.
*/
package interval
