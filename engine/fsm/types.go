package fsm

import "github.com/lixenwraith/oled-xmas/engine"

// State is the constraint for cycle states: a small enumeration starting at zero
type State interface {
	~uint8
}

// EnterFunc is called after the cycle moves from prev to next
type EnterFunc[S State] func(prev, next S, now engine.Millis)
