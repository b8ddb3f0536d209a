// Package weather runs the Snow → Rain → Clear cycle and its particle effects
package weather

import (
	"fmt"

	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/engine/fsm"
	"github.com/lixenwraith/oled-xmas/particle"
	"github.com/lixenwraith/oled-xmas/render"
)

// Weather is the active particle mode
type Weather uint8

const (
	Snow Weather = iota
	Rain
	Clear
	weatherCount
)

func (w Weather) String() string {
	switch w {
	case Snow:
		return "Snow"
	case Rain:
		return "Rain"
	case Clear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Cycle owns the particle pool and the weather state machine
// No other component mutates the pool
type Cycle struct {
	machine *fsm.Cycle[Weather]
	pool    *particle.Pool
	rng     engine.Random
	frame   uint8
	scatter bool
}

// New creates a cycle starting in Snow at now
func New(pool *particle.Pool, rng engine.Random, now engine.Millis) *Cycle {
	c := &Cycle{
		machine: fsm.NewCycle(Snow, weatherCount, constants.WeatherChangeDurationMs, now),
		pool:    pool,
		rng:     rng,
		scatter: true,
	}
	c.machine.OnEnter(func(_, _ Weather, _ engine.Millis) {
		c.pool.Clear()
		c.scatter = true
	})
	return c
}

// OnChange registers a callback for weather transitions
func (c *Cycle) OnChange(fn func(prev, next Weather)) {
	c.machine.OnEnter(func(prev, next Weather, _ engine.Millis) {
		fn(prev, next)
	})
}

// Advance moves to the next weather when the period elapsed
func (c *Cycle) Advance(now engine.Millis) bool {
	return c.machine.Advance(now)
}

// Current returns the active weather
func (c *Cycle) Current() Weather {
	return c.machine.Current()
}

// Pool exposes the particle pool for inspection
func (c *Cycle) Pool() *particle.Pool {
	return c.pool
}

// Update advances the cycle then simulates and draws the active weather
func (c *Cycle) Update(now engine.Millis, canvas render.Canvas) {
	c.Advance(now)

	switch w := c.machine.Current(); w {
	case Snow:
		c.updateSnow()
		DrawParticles(canvas, c.pool)
	case Rain:
		c.updateRain()
		DrawParticles(canvas, c.pool)
	case Clear:
		DrawConstellation(canvas)
	default:
		panic(fmt.Sprintf("weather: unhandled state %d", w))
	}
}

func (c *Cycle) updateSnow() {
	c.frame++
	c.refill(particle.KindSnow, constants.SnowSpawnMargin, func() float32 {
		return float32(engine.RandRange(c.rng, constants.MinParticleSpeed, constants.MaxParticleSpeed))
	})

	// Lateral drift: odd slots lean right, even slots left
	// Applied before Step so a flake drifting past the edge is culled this tick
	for slot := range c.pool.Active() {
		if (int(c.frame)+slot)%constants.SnowJitterPeriod != 0 {
			continue
		}
		dx := float32(-1)
		if slot%2 == 1 {
			dx = 1
		}
		c.pool.Nudge(slot, dx, 0)
	}
	c.pool.Step()
}

func (c *Cycle) updateRain() {
	c.refill(particle.KindRain, 0, func() float32 { return constants.RainSpeed })
	c.pool.Step()
}

// refill spawns into every free slot; right after a state change particles are
// scattered across the frame, afterwards they enter along the top edge keeping
// margin pixels clear of the side borders
func (c *Cycle) refill(kind particle.Kind, margin int, speed func() float32) {
	for c.pool.Free() > 0 {
		var x, y int
		if c.scatter {
			x = engine.RandRange(c.rng, constants.XOffset, constants.XOffset+constants.FrameWidth)
			y = engine.RandRange(c.rng, constants.YOffset, constants.YOffset+constants.FrameHeight)
		} else {
			x = engine.RandRange(c.rng,
				constants.XOffset+margin,
				constants.XOffset+constants.FrameWidth-margin)
			y = constants.YOffset
		}
		if !c.pool.Spawn(float32(x), float32(y), 0, speed(), kind) {
			break
		}
	}
	c.scatter = false
}
