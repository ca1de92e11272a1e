package sprout

import "time"

// DefaultTPS is the frame rate Run targets when RunConfig.TPS is zero.
const DefaultTPS = 60

// Clock measures the wall time between frames. Tick reports seconds since
// the previous Tick, capped at one frame interval so a stall (window drag,
// breakpoint) never produces a large step.
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewClock creates a clock for the given frame rate. tps <= 0 uses DefaultTPS.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Clock{
		interval: time.Second / time.Duration(tps),
		now:      time.Now,
	}
}

// Interval returns the target duration of one frame.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick returns the seconds elapsed since the previous call. The first call
// reports one full interval.
func (c *Clock) Tick() float64 {
	now := c.now()
	elapsed := c.interval
	if !c.last.IsZero() {
		elapsed = min(now.Sub(c.last), c.interval)
	}
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Seconds()
}
