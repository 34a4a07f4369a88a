package scheduler

import "time"

// Clock provides the current instant and the sleep primitive for the run
// loop. It can be mocked for testing.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// After returns a channel that delivers once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// SystemClock implements Clock using the system's monotonic time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// After waits for d using a system timer.
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
