package play

import "time"

// Clock fires a tick every interval of accumulated frame time. It fires at
// most once per Advance, so a slow frame never runs two ticks back to back.
type Clock struct {
	interval time.Duration
	acc      time.Duration
	running  bool
}

// Start cancels any previous schedule and begins a fresh one.
func (c *Clock) Start(interval time.Duration) {
	c.Stop()
	c.interval = interval
	c.running = interval > 0
}

func (c *Clock) Stop() {
	c.running = false
	c.acc = 0
}

func (c *Clock) Running() bool { return c.running }

func (c *Clock) Interval() time.Duration { return c.interval }

// Advance adds dt and reports whether a tick is due.
func (c *Clock) Advance(dt time.Duration) bool {
	if !c.running {
		return false
	}
	c.acc += dt
	if c.acc < c.interval {
		return false
	}
	c.acc -= c.interval
	if c.acc > c.interval {
		c.acc = c.interval
	}
	return true
}
