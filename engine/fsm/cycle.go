package fsm

import "github.com/lixenwraith/oled-xmas/engine"

// Cycle is a round-robin state machine over states [0, count)
// The current state advances to (current+1) mod count every time its gate fires;
// no state is skipped or revisited out of order
type Cycle[S State] struct {
	gate       *engine.IntervalGate
	current    S
	initial    S
	count      S
	lastChange engine.Millis
	onEnter    []EnterFunc[S]
}

// NewCycle creates a cycle at initial whose first period starts at now
// count must be > 0 and initial < count
func NewCycle[S State](initial, count S, period engine.Millis, now engine.Millis) *Cycle[S] {
	gate := engine.NewIntervalGate(period)
	gate.Reset(now)
	return &Cycle[S]{
		gate:       gate,
		current:    initial,
		initial:    initial,
		count:      count,
		lastChange: now,
	}
}

// OnEnter registers a hook run on every transition, in registration order
func (c *Cycle[S]) OnEnter(fn EnterFunc[S]) {
	c.onEnter = append(c.onEnter, fn)
}

// Advance moves to the next state if the period elapsed and reports whether it did
func (c *Cycle[S]) Advance(now engine.Millis) bool {
	if !c.gate.ShouldFire(now) {
		return false
	}
	prev := c.current
	c.current = (c.current + 1) % c.count
	c.lastChange = now
	for _, fn := range c.onEnter {
		fn(prev, c.current, now)
	}
	return true
}

// Current returns the active state
func (c *Cycle[S]) Current() S {
	return c.current
}

// LastChange returns when the active state was entered
func (c *Cycle[S]) LastChange() engine.Millis {
	return c.lastChange
}

// TimeInState returns milliseconds spent in the active state, wrap-safe
func (c *Cycle[S]) TimeInState(now engine.Millis) engine.Millis {
	return now - c.lastChange
}

// Period returns the state duration
func (c *Cycle[S]) Period() engine.Millis {
	return c.gate.Interval()
}

// Reset returns to the initial state and restarts the period at now without running hooks
func (c *Cycle[S]) Reset(now engine.Millis) {
	c.current = c.initial
	c.lastChange = now
	c.gate.Reset(now)
}
