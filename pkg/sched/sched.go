// Package sched provides the two scheduled behaviors the flows need:
// a cancellable per-second countdown (resend cooldown) and a
// cancellable one-shot delay (post-success navigation).
package sched

import (
	"sync"
	"time"
)

// Countdown counts down from a starting value once per tick, stopping
// at zero. Restarting cancels the previous run. Safe for concurrent
// use.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	stop      chan struct{}
}

// NewCountdown returns an idle countdown at zero.
func NewCountdown() *Countdown { return &Countdown{} }

// Start begins counting down from seconds, decrementing every tick.
// A tick of zero means one second. Any run already in progress is
// cancelled first.
func (c *Countdown) Start(seconds int, tick time.Duration) {
	if tick <= 0 {
		tick = time.Second
	}

	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	if seconds <= 0 {
		c.remaining = 0
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	c.remaining = seconds
	c.mu.Unlock()

	go func() {
		t := time.NewTicker(tick)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				c.mu.Lock()
				if c.stop != stop {
					c.mu.Unlock()
					return
				}
				c.remaining--
				if c.remaining <= 0 {
					c.remaining = 0
					c.stop = nil
					c.mu.Unlock()
					return
				}
				c.mu.Unlock()
			}
		}
	}()
}

// Remaining returns the seconds left; zero when idle.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Reset cancels any run in progress and returns the countdown to zero.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.remaining = 0
}

// After runs fn once after d and returns a cancel function. Cancelling
// after the callback has fired is a no-op.
func After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
