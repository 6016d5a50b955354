// Package debounce coalesces bursts of events into a single action that runs
// once the burst has been quiet for a fixed delay.
package debounce

import (
	"sync"
	"time"
)

// Timer runs fn after delay has passed without another call to Trigger. Each
// Trigger cancels the pending run and schedules a new one, so at most one run
// is pending at any time.
type Timer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
	seq   uint64
}

// New returns a Timer that calls fn once delay has elapsed after the last
// Trigger.
func New(delay time.Duration, fn func()) *Timer {
	return &Timer{delay: delay, fn: fn}
}

// Trigger (re)starts the quiet period.
func (t *Timer) Trigger() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.timer = time.AfterFunc(t.delay, func() {
		t.fire(seq)
	})
}

func (t *Timer) fire(seq uint64) {
	t.mu.Lock()
	// A Trigger that raced with this callback already replaced the timer.
	if seq != t.seq || t.timer == nil {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.mu.Unlock()
	t.fn()
}

// Pending reports whether a run is scheduled.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Flush runs a pending action immediately. It reports whether there was one.
func (t *Timer) Flush() bool {
	t.mu.Lock()
	if t.timer == nil {
		t.mu.Unlock()
		return false
	}
	t.timer.Stop()
	t.timer = nil
	t.seq++
	t.mu.Unlock()
	t.fn()
	return true
}

// Stop cancels a pending run without calling fn.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
}
