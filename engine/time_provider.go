package engine

import "time"

// Millis is a millisecond timestamp from a wrapping 32-bit counter
// Differences must be taken with modular subtraction (b - a), never compared directly
type Millis uint32

// Clock supplies the current millisecond count
type Clock interface {
	Now() Millis
}

// MonotonicClock counts milliseconds since construction using the monotonic clock reading
// The count wraps to zero after ~49.7 days, as the device's millis() does
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns elapsed milliseconds truncated to 32 bits
func (c *MonotonicClock) Now() Millis {
	return Millis(uint64(time.Since(c.start).Milliseconds()))
}
