package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

const (
	sleighStartX = constants.XOffset - constants.SleighWidth - 10
	sleighEndX   = constants.XOffset + constants.FrameWidth + 10
	sleighY      = constants.YOffset + 15
)

// Sleigh flies left to right pulled by a reindeer, climbing as it enters
type Sleigh struct {
	x        int
	visible  bool
	altitude *engine.ScalarAnimator
}

func NewSleigh() *Sleigh {
	return &Sleigh{
		x:        sleighStartX,
		altitude: engine.NewScalarAnimator(0),
	}
}

// Reset parks the sleigh off screen so the next draw starts a new pass
func (s *Sleigh) Reset(engine.Millis) {
	s.visible = false
	s.x = sleighStartX
	s.altitude.SetImmediate(0)
}

// X returns the sleigh's left edge
func (s *Sleigh) X() int {
	return s.x
}

// Visible reports whether a pass is in progress
func (s *Sleigh) Visible() bool {
	return s.visible
}

// Altitude returns the current climb offset in pixels below cruising height
func (s *Sleigh) Altitude() float32 {
	return s.altitude.Value()
}

func (s *Sleigh) Draw(_ engine.Millis, canvas render.Canvas) {
	if !s.visible {
		s.visible = true
		s.x = sleighStartX
		s.altitude.SetImmediate(constants.SleighClimbOffset)
		s.altitude.AnimateTo(0, constants.SleighClimbRate)
	}

	s.x++
	s.altitude.Step(constants.FrameDeltaSeconds)
	x := s.x
	y := sleighY + int(s.altitude.Value()+0.5)

	// Sleigh runner
	canvas.DrawLine(x, y, x+8, y)
	canvas.DrawLine(x, y, x+2, y-2)
	canvas.DrawLine(x+8, y, x+6, y-2)

	// Rider
	canvas.DrawBox(x+3, y-5, 4, 5)
	canvas.DrawDisc(x+5, y-6, 1)
	canvas.DrawLine(x+4, y-7, x+6, y-7)
	canvas.DrawPixel(x+6, y-8)

	deerX := x + 10
	deerY := y - 2

	// Harness
	canvas.DrawLine(x+8, y-1, deerX, deerY)

	canvas.DrawLine(deerX, deerY, deerX+6, deerY)
	leg := (s.x / 2) % 2
	if leg < 0 {
		leg = -leg
	}
	canvas.DrawLine(deerX+1, deerY, deerX+1, deerY+2+leg)
	canvas.DrawLine(deerX+4, deerY, deerX+4, deerY+2+(1-leg))

	canvas.DrawLine(deerX+6, deerY, deerX+8, deerY-2)
	canvas.DrawDisc(deerX+8, deerY-2, 1)
	canvas.DrawPixel(deerX+9, deerY-3)
	canvas.DrawLine(deerX+8, deerY-3, deerX+7, deerY-4)
	canvas.DrawLine(deerX+8, deerY-3, deerX+9, deerY-4)

	if s.x > sleighEndX {
		s.visible = false
	}
}
