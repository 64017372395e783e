// Package notify implements the transient notification scheduler. One message
// is visible at a time; showing a new message replaces the current one and
// restarts the auto-clear timer.
package notify

import (
	"sync"
	"time"
)

// Notifier schedules transient user notifications. Show is last-write-wins:
// there is no queue, and the clear timer always belongs to the most recent
// message. Safe for concurrent use.
type Notifier struct {
	mutex    sync.Mutex
	duration time.Duration

	message string
	visible bool
	seq     uint64
	timer   *time.Timer
}

// New creates a Notifier whose messages auto-clear after duration. A
// non-positive duration disables auto-clear; messages then stay visible until
// replaced or closed.
func New(duration time.Duration) *Notifier {
	return &Notifier{duration: duration}
}

// Show displays a message immediately, replacing any visible one and
// restarting the auto-clear timer
func (n *Notifier) Show(message string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.seq++
	n.message = message
	n.visible = true

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	if n.duration <= 0 {
		return
	}

	seq := n.seq
	n.timer = time.AfterFunc(n.duration, func() {
		n.mutex.Lock()
		defer n.mutex.Unlock()
		// A newer Show or Close already superseded this timer.
		if n.seq != seq {
			return
		}
		n.message = ""
		n.visible = false
		n.timer = nil
	})
}

// Current returns the visible message, if any
func (n *Notifier) Current() (string, bool) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.message, n.visible
}

// Close clears the visible message and cancels the pending auto-clear. Call
// it when the owning view is torn down so no timer fires afterward.
func (n *Notifier) Close() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.seq++
	n.message = ""
	n.visible = false
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
