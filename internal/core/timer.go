package core

import "time"

// FrameClock measures the time between successive frames and keeps running
// totals for the shutdown report.
type FrameClock struct {
	now     func() time.Time
	last    time.Time
	start   time.Time
	frames  int
	elapsed time.Duration
}

// NewFrameClock constructs a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick records a frame and returns the seconds elapsed since the previous
// one. The first call returns fallback, which is typically 1/TPS.
func (c *FrameClock) Tick(fallback float64) float64 {
	now := c.now()
	c.frames++
	if c.last.IsZero() {
		c.last = now
		c.start = now
		return fallback
	}
	delta := now.Sub(c.last)
	c.last = now
	c.elapsed = now.Sub(c.start)
	return delta.Seconds()
}

// Frames returns the number of frames recorded so far.
func (c *FrameClock) Frames() int { return c.frames }

// Average returns the mean frame duration, or zero before two frames have
// been recorded.
func (c *FrameClock) Average() time.Duration {
	if c.frames < 2 {
		return 0
	}
	return c.elapsed / time.Duration(c.frames-1)
}
