// Package clock provides the session clock shared by the tick driver and
// input handling, so spawn, sweep and tap matching agree on the time.
package clock

import "time"

// Session measures time since play started. Elapsed is negative while a
// start delay is still running.
type Session struct {
	now     func() time.Time
	delay   time.Duration
	start   time.Time
	started bool
}

// New returns a clock whose zero lies delay after Start is called, matching
// when the backing track begins.
func New(delay time.Duration) *Session {
	return NewWithNow(time.Now, delay)
}

func NewWithNow(now func() time.Time, delay time.Duration) *Session {
	return &Session{now: now, delay: delay}
}

func (c *Session) Start() {
	if c.started {
		return
	}
	c.start = c.now().Add(c.delay)
	c.started = true
}

func (c *Session) Started() bool { return c.started }

// Now reads the underlying wall clock. Input readers stamp events with it.
func (c *Session) Now() time.Time { return c.now() }

// Elapsed is the session time now.
func (c *Session) Elapsed() time.Duration {
	return c.At(c.now())
}

// At converts a wall instant into session time.
func (c *Session) At(t time.Time) time.Duration {
	if !c.started {
		return 0
	}
	return t.Sub(c.start)
}
