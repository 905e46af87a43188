package engine

import "time"

// Clock stamps sales with unix-millisecond timestamps that are strictly
// increasing in insertion order. Wall clocks can repeat a millisecond (or
// step backwards under NTP correction); listings tie-break on timestamp, so
// the clock never hands out the same value twice.
//
// Not safe for concurrent use; the engine is single-writer.
type Clock struct {
	now  func() time.Time
	last int64
}

// NewClock creates a clock backed by the system time.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt creates a clock that starts at a fixed instant and advances
// one millisecond per call. Used by tests and golden snapshots.
func NewClockAt(startMillis int64) *Clock {
	c := &Clock{last: startMillis - 1}
	c.now = func() time.Time { return time.UnixMilli(c.last) }
	return c
}

// NextMillis returns the current time in unix milliseconds, bumped past the
// previous return value when the wall clock has not moved.
func (c *Clock) NextMillis() int64 {
	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}

// Current returns the last issued timestamp without advancing the clock.
func (c *Clock) Current() int64 {
	return c.last
}
