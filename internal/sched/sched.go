// Package sched provides the single-threaded timer substrate that game
// sessions schedule their ticks on. Callbacks never run concurrently with
// each other or with input handling: the Manual scheduler fires them from
// Advance, and the Tea scheduler fires them from the Bubble Tea update loop.
package sched

import "time"

// Timer is a handle to a scheduled callback. Stop is idempotent and safe to
// call on a timer that already fired.
type Timer interface {
	Stop()
}

// Scheduler schedules one-shot and periodic callbacks.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Timer
	// Every runs fn every d until the returned timer is stopped.
	Every(d time.Duration, fn func()) Timer
	// Now returns the time elapsed on the scheduler's clock.
	Now() time.Duration
}
