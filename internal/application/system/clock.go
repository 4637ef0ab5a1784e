package system

import "time"

// Clock reports simulated elapsed time.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a clock advanced explicitly, once per simulated tick.
// Pausing the game means not advancing it.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a clock at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the elapsed simulated time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
