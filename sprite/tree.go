package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

const (
	treeX = constants.XOffset + constants.FrameWidth/2
	treeY = constants.YOffset + constants.FrameHeight - 5
)

// Tree is a three-tier tree with baubles and alternating twinkle lights
type Tree struct {
	twinkle *engine.IntervalGate
	frame   uint8
}

func NewTree() *Tree {
	return &Tree{twinkle: engine.NewIntervalGate(constants.TwinkleIntervalMs)}
}

func (t *Tree) Reset(now engine.Millis) {
	t.twinkle.Reset(now)
}

// TwinkleFrame returns the light phase counter
func (t *Tree) TwinkleFrame() uint8 {
	return t.frame
}

func (t *Tree) Draw(now engine.Millis, canvas render.Canvas) {
	for i := 0; i < 3; i++ {
		size := 12 - i*3
		base := treeY - i*8
		canvas.DrawTriangle(
			treeX, base-size,
			treeX-size, base,
			treeX+size, base,
		)

		// Baubles sit just above each tier's base
		half := (size - 2) / 2
		canvas.DrawPixel(treeX-half, base-2)
		canvas.DrawPixel(treeX+half, base-2)
	}

	canvas.DrawBox(treeX-2, treeY, 4, 5)

	if t.twinkle.ShouldFire(now) {
		t.frame++
	}
	for i := 0; i < 3; i++ {
		if (int(t.frame)+i)%2 == 0 {
			canvas.DrawPixel(treeX, treeY-i*8-4)
		}
	}
}

// Star is the pulsing star on top of the tree
type Star struct {
	gate       *engine.IntervalGate
	brightness int
	increasing bool
}

func NewStar() *Star {
	return &Star{
		gate:       engine.NewIntervalGate(constants.StarAnimationMs),
		increasing: true,
	}
}

func (s *Star) Reset(now engine.Millis) {
	s.gate.Reset(now)
}

// Brightness returns the current ray length in [0, StarMaxBrightness]
func (s *Star) Brightness() int {
	return s.brightness
}

// Animate moves the brightness one step when the gate fires
func (s *Star) Animate(now engine.Millis) {
	if !s.gate.ShouldFire(now) {
		return
	}
	if s.increasing {
		s.brightness++
		if s.brightness >= constants.StarMaxBrightness {
			s.increasing = false
		}
	} else {
		s.brightness--
		if s.brightness <= 0 {
			s.increasing = true
		}
	}
}

func (s *Star) Draw(now engine.Millis, canvas render.Canvas) {
	s.Animate(now)

	x := constants.XOffset + constants.FrameWidth/2
	y := constants.YOffset + 8
	for i := 0; i <= s.brightness; i++ {
		canvas.DrawPixel(x, y-i)
		canvas.DrawPixel(x, y+i)
		canvas.DrawPixel(x-i, y)
		canvas.DrawPixel(x+i, y)
	}
}
