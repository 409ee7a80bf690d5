package session

import "time"

// Timer is a cancellable repeating callback.
type Timer interface {
	// Stop cancels the timer. It is safe to call more than once.
	Stop()
}

// Scheduler installs repeating callbacks. Implementations must run each
// callback to completion on the caller's goroutine, one at a time.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// FrameClock is a deterministic Scheduler driven by explicit Advance calls.
// The game advances it once per rendered frame, so scheduled callbacks run
// inside the same update loop that processes input.
type FrameClock struct {
	now    time.Duration
	seq    uint64
	timers []*frameTimer
}

type frameTimer struct {
	interval time.Duration
	due      time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

func (t *frameTimer) Stop() { t.stopped = true }

// NewFrameClock creates a clock at virtual time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Every schedules fn every interval of virtual time, first firing one
// interval from now. A non-positive interval yields a timer that never fires.
func (c *FrameClock) Every(interval time.Duration, fn func()) Timer {
	c.seq++
	t := &frameTimer{
		interval: interval,
		due:      c.now + interval,
		seq:      c.seq,
		fn:       fn,
		stopped:  interval <= 0 || fn == nil,
	}
	if !t.stopped {
		c.timers = append(c.timers, t)
	}
	return t
}

// Now returns the virtual time elapsed since the clock was created.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that can still fire.
func (c *FrameClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d and fires every due callback in
// due-time order, ties broken by creation order. It returns the number of
// callbacks fired. Timers stopped by an earlier callback do not fire.
func (c *FrameClock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	fired := 0
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		t.due += t.interval
		t.fn()
		fired++
	}
	c.now = target
	c.prune()
	return fired
}

// nextDue returns the earliest live timer due at or before target.
func (c *FrameClock) nextDue(target time.Duration) *frameTimer {
	var best *frameTimer
	for _, t := range c.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *FrameClock) prune() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
