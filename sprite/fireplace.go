package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

// Fireplace is a chimney with flames flickering between four patterns
type Fireplace struct {
	gate    *engine.IntervalGate
	rng     engine.Random
	pattern int
}

func NewFireplace(rng engine.Random) *Fireplace {
	return &Fireplace{
		gate: engine.NewIntervalGate(constants.FlameAnimationMs),
		rng:  rng,
	}
}

func (f *Fireplace) Reset(now engine.Millis) {
	f.gate.Reset(now)
}

// Pattern returns the current flame pattern in [0, 4)
func (f *Fireplace) Pattern() int {
	return f.pattern
}

func (f *Fireplace) Draw(now engine.Millis, canvas render.Canvas) {
	x := constants.XOffset + constants.FrameWidth - 15
	y := constants.YOffset + constants.FrameHeight - 5

	canvas.DrawBox(x-4, y-8, 8, 8)

	if f.gate.ShouldFire(now) {
		f.pattern = f.rng.Intn(4)
	}

	for i := 0; i < constants.FlameMaxHeight; i++ {
		width := max(1, 3-i)
		shift := (f.pattern + i) % 2
		canvas.DrawHLine(x-width/2+shift, y-8-i, width)
	}
}
