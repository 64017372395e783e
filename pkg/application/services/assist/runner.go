// Package assist implements the delayed-command runner behind the simulated
// AI, voice, and upload flows. A command is a closure applied after a fixed
// processing delay; at most one command is in flight at a time.
package assist

import (
	"sync"
	"time"
)

// Runner applies commands after a fixed delay. Start while a command is
// pending is a no-op, mirroring how the triggering control is disabled while
// processing. A non-positive delay applies commands inline, which is what
// tests inject.
type Runner struct {
	mutex   sync.Mutex
	delay   time.Duration
	pending bool
	timer   *time.Timer
}

// New creates a Runner with the given processing delay
func New(delay time.Duration) *Runner {
	return &Runner{delay: delay}
}

// Start schedules apply to run after the processing delay. It returns false
// without scheduling anything if a command is already in flight.
func (r *Runner) Start(apply func()) bool {
	r.mutex.Lock()
	if r.pending {
		r.mutex.Unlock()
		return false
	}

	if r.delay <= 0 {
		r.mutex.Unlock()
		apply()
		return true
	}

	r.pending = true
	r.timer = time.AfterFunc(r.delay, func() {
		r.mutex.Lock()
		if !r.pending {
			// Cancelled between firing and acquiring the lock.
			r.mutex.Unlock()
			return
		}
		r.pending = false
		r.timer = nil
		r.mutex.Unlock()
		apply()
	})
	r.mutex.Unlock()
	return true
}

// Pending reports whether a command is in flight
func (r *Runner) Pending() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.pending
}

// Cancel discards the in-flight command, if any. Its apply closure never runs.
func (r *Runner) Cancel() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.pending = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
