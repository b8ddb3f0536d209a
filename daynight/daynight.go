// Package daynight toggles the sky between sun and moon on a fixed period
package daynight

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/engine/fsm"
	"github.com/lixenwraith/oled-xmas/render"
)

// Phase is the time of day
type Phase uint8

const (
	Night Phase = iota
	Day
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case Night:
		return "Night"
	case Day:
		return "Day"
	default:
		return "Unknown"
	}
}

// Sky position of the sun and moon
const (
	bodyX = constants.XOffset + 6
	bodyY = constants.YOffset + 6
)

// Cycle is the day/night overlay, drawn independently of the active scene
type Cycle struct {
	machine *fsm.Cycle[Phase]
	rise    *engine.ScalarAnimator
}

// New creates a cycle starting at night, as the device powers up
func New(now engine.Millis) *Cycle {
	c := &Cycle{
		machine: fsm.NewCycle(Night, phaseCount, constants.DayNightDurationMs, now),
		rise:    engine.NewScalarAnimator(0),
	}
	c.machine.OnEnter(func(_, _ Phase, _ engine.Millis) {
		c.rise.SetImmediate(constants.CelestialRiseOffset)
		c.rise.AnimateTo(0, constants.CelestialRiseRate)
	})
	return c
}

// OnChange registers a callback for day/night transitions
func (c *Cycle) OnChange(fn func(prev, next Phase)) {
	c.machine.OnEnter(func(prev, next Phase, _ engine.Millis) {
		fn(prev, next)
	})
}

// Advance toggles the phase when the period elapsed
func (c *Cycle) Advance(now engine.Millis) bool {
	return c.machine.Advance(now)
}

// IsNight reports whether the moon is up
func (c *Cycle) IsNight() bool {
	return c.machine.Current() == Night
}

// Phase returns the current phase
func (c *Cycle) Phase() Phase {
	return c.machine.Current()
}

// RiseOffset returns how far below its resting place the body is drawn
func (c *Cycle) RiseOffset() int {
	return int(c.rise.Value() + 0.5)
}

// Update advances the toggle and rise animation, then draws the sun or moon
func (c *Cycle) Update(now engine.Millis, canvas render.Canvas) {
	c.Advance(now)
	c.rise.Step(constants.FrameDeltaSeconds)

	y := bodyY + c.RiseOffset()
	if c.IsNight() {
		DrawMoon(canvas, bodyX, y)
	} else {
		DrawSun(canvas, bodyX, y)
	}
}

// DrawMoon draws a crescent by erasing an offset disc from a full one
func DrawMoon(canvas render.Canvas, x, y int) {
	canvas.DrawDisc(x, y, 3)
	canvas.SetDrawColor(render.ColorClear)
	canvas.DrawDisc(x+1, y, 2)
	canvas.SetDrawColor(render.ColorSet)
}

// DrawSun draws a circle with four cardinal rays
func DrawSun(canvas render.Canvas, x, y int) {
	canvas.DrawCircle(x, y, 3)
	canvas.DrawPixel(x+4, y)
	canvas.DrawPixel(x, y+4)
	canvas.DrawPixel(x-4, y)
	canvas.DrawPixel(x, y-4)
}
