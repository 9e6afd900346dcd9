package controller

import "time"

// Clock provides monotonic milliseconds. All rate gates and timers in the
// control loop share one Clock, so their relative phase is deterministic for a
// given elapsed time. Values wrap at 2^32; all elapsed-time math in this
// package is subtraction-based and survives the wrap.
type Clock interface {
	Millis() uint32
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting milliseconds since its creation.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// ManualClock is a Clock advanced explicitly by the caller. Used by tests and
// the simulator to make loop timing reproducible.
type ManualClock struct {
	now uint32
}

func (c *ManualClock) Millis() uint32 {
	return c.now
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms uint32) {
	c.now += ms
}

// Set jumps the clock to an absolute millisecond value, including near-wrap
// values.
func (c *ManualClock) Set(ms uint32) {
	c.now = ms
}
