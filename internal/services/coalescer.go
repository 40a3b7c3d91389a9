package services

import (
	"sync"
	"time"
)

// Coalescer merges rapid triggers into one delayed call.
// Each Trigger replaces the pending argument and restarts the quiet window;
// fn runs once, with the latest argument, after the window elapses with no
// further triggers.
type Coalescer[T any] struct {
	fn      func(T)
	latest  T
	mu      sync.Mutex
	pending bool
	seq     uint64 // Identifies the armed timer; stale timers compare against it
	timer   *time.Timer
	window  time.Duration
}

// NewCoalescer creates a coalescer that calls fn after window of quiet
func NewCoalescer[T any](window time.Duration, fn func(T)) *Coalescer[T] {
	return &Coalescer[T]{
		fn:     fn,
		window: window,
	}
}

// Trigger records arg as the latest argument and rearms the timer
func (c *Coalescer[T]) Trigger(arg T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.latest = arg
	c.pending = true
	c.seq++
	seq := c.seq
	c.timer = time.AfterFunc(c.window, func() { c.fire(seq) })
}

// Cancel drops a pending call. It returns true if one was pending.
func (c *Coalescer[T]) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	wasPending := c.pending
	c.pending = false
	c.seq++
	var zero T
	c.latest = zero
	return wasPending
}

// Pending reports whether a call is scheduled
func (c *Coalescer[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Coalescer[T]) fire(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || !c.pending {
		// Superseded by a later Trigger or cancelled
		c.mu.Unlock()
		return
	}
	arg := c.latest
	var zero T
	c.latest = zero
	c.pending = false
	c.timer = nil
	c.mu.Unlock()

	c.fn(arg)
}
