// Package timing measures frame time and paces the render loop.
package timing

import "time"

// FrameClock measures wall-clock time between processed frames. Deltas are
// not clamped: a stalled frame produces one large step.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewFrameClockWithSource uses now instead of time.Now.
func NewFrameClockWithSource(now func() time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Tick returns seconds since the previous Tick, or 0 on the first call.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
