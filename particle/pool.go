// Package particle holds the fixed-capacity weather particle arena
package particle

import (
	"iter"

	"github.com/lixenwraith/oled-xmas/constants"
)

// Kind selects how a particle is drawn
type Kind uint8

const (
	KindSnow Kind = iota
	KindRain
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindSnow:
		return "Snow"
	case KindRain:
		return "Rain"
	case KindStar:
		return "Star"
	default:
		return "Unknown"
	}
}

// Particle is a simulated point; Life runs from 1 down to 0
type Particle struct {
	X, Y   float32
	VX, VY float32
	Kind   Kind
	Life   float32
	Active bool
}

// Bounds is the rectangle particles live in, edges inclusive
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// FrameBounds returns the animation frame rectangle
func FrameBounds() Bounds {
	return Bounds{
		MinX: constants.XOffset,
		MinY: constants.YOffset,
		MaxX: constants.XOffset + constants.FrameWidth,
		MaxY: constants.YOffset + constants.FrameHeight,
	}
}

// Contains reports whether (x, y) lies inside the rectangle
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Pool is a fixed array of particles with linear-scan allocation
// activeCount always equals the number of slots with Active set
type Pool struct {
	particles   [constants.MaxParticles]Particle
	activeCount int
	bounds      Bounds
	decay       float32
}

// NewPool creates an empty pool culling against bounds
func NewPool(bounds Bounds) *Pool {
	return &Pool{
		bounds: bounds,
		decay:  constants.ParticleLifeDecay,
	}
}

// Spawn activates the first free slot with full life
// Returns false and changes nothing when the pool is full
func (p *Pool) Spawn(x, y, vx, vy float32, kind Kind) bool {
	for i := range p.particles {
		if p.particles[i].Active {
			continue
		}
		p.particles[i] = Particle{X: x, Y: y, VX: vx, VY: vy, Kind: kind, Life: 1, Active: true}
		p.activeCount++
		return true
	}
	return false
}

// Step moves every active particle, ages it, and culls dead or escaped ones
func (p *Pool) Step() {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Active {
			continue
		}

		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life -= p.decay

		if pt.Life <= 0 || !p.bounds.Contains(pt.X, pt.Y) {
			pt.Active = false
			p.activeCount--
		}
	}
}

// Nudge shifts an active particle without aging it; inactive or invalid slots are ignored
func (p *Pool) Nudge(slot int, dx, dy float32) {
	if slot < 0 || slot >= len(p.particles) || !p.particles[slot].Active {
		return
	}
	p.particles[slot].X += dx
	p.particles[slot].Y += dy
}

// Active yields (slot, particle copy) for active slots in slot order
// The sequence reads live state each time it is ranged over
func (p *Pool) Active() iter.Seq2[int, Particle] {
	return func(yield func(int, Particle) bool) {
		for i := range p.particles {
			if !p.particles[i].Active {
				continue
			}
			if !yield(i, p.particles[i]) {
				return
			}
		}
	}
}

// Clear deactivates every slot
func (p *Pool) Clear() {
	for i := range p.particles {
		p.particles[i].Active = false
	}
	p.activeCount = 0
}

func (p *Pool) ActiveCount() int { return p.activeCount }
func (p *Pool) Cap() int         { return len(p.particles) }
func (p *Pool) Free() int        { return len(p.particles) - p.activeCount }
func (p *Pool) Bounds() Bounds   { return p.bounds }
