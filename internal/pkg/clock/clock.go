// Package clock provides an injectable time source so components that fall
// back to "current time" stay deterministic under test.
package clock

import "time"

// Clock supplies the current time to components that need a wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// NewSystemClock creates a Clock that reads the system wall clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock frozen at a single instant, used in tests.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock that always reports the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
