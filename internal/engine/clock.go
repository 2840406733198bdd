package engine

import "sync/atomic"

// Clock counts simulated days.
//
// Day 0 is the state the items were loaded in. Every Advance moves the
// clock forward by one day; it never goes backwards.
type Clock struct {
	day atomic.Int64
}

// NewClock creates a clock at day 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock that resumes at a given day.
// Used when continuing a simulation from a saved report.
func NewClockAt(day int64) *Clock {
	c := &Clock{}
	c.day.Store(day)
	return c
}

// Advance moves to the next day and returns it.
func (c *Clock) Advance() int64 {
	return c.day.Add(1)
}

// Day returns the current day without advancing.
func (c *Clock) Day() int64 {
	return c.day.Load()
}
