// Package clock provides the timers that drive delayed flips.
//
// Every callback scheduled through a Clock runs on the goroutine that owns
// the UI state: Manual runs them inside Advance, Loop hands them to the
// goroutine draining Tasks. Nothing in this package runs user callbacks
// concurrently, so the flipper types need no locks.
package clock

import "time"

// Clock arms one-shot timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to an armed callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the timer, false if it already fired or was stopped.
	Stop() bool
}
