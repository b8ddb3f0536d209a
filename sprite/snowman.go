package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

// Snowman stands at the left of the frame waving both arms
type Snowman struct {
	gate   *engine.IntervalGate
	arm    int
	goesUp bool
}

func NewSnowman() *Snowman {
	return &Snowman{
		gate:   engine.NewIntervalGate(constants.ArmAnimationMs),
		goesUp: true,
	}
}

func (s *Snowman) Reset(now engine.Millis) {
	s.gate.Reset(now)
}

// Arm returns the arm offset, swinging between -1 and 2
func (s *Snowman) Arm() int {
	return s.arm
}

func (s *Snowman) animate(now engine.Millis) {
	if !s.gate.ShouldFire(now) {
		return
	}
	if s.goesUp {
		s.arm++
		if s.arm >= 2 {
			s.goesUp = false
		}
	} else {
		s.arm--
		if s.arm <= -1 {
			s.goesUp = true
		}
	}
}

func (s *Snowman) Draw(now engine.Millis, canvas render.Canvas) {
	x := constants.XOffset + 12
	y := constants.YOffset + constants.FrameHeight - 5

	canvas.DrawDisc(x, y, 4)
	canvas.DrawDisc(x, y-6, 3)
	canvas.DrawDisc(x, y-11, 2)

	// Eyes are holes in the head
	canvas.SetDrawColor(render.ColorClear)
	canvas.DrawPixel(x-1, y-12)
	canvas.DrawPixel(x+1, y-12)
	canvas.SetDrawColor(render.ColorSet)

	s.animate(now)
	canvas.DrawLine(x-4, y-6, x-6, y-8+s.arm)
	canvas.DrawLine(x+4, y-6, x+6, y-8-s.arm)

	// Nose
	canvas.DrawPixel(x, y-11)
	canvas.DrawPixel(x+1, y-11)

	// Scarf
	canvas.DrawLine(x-2, y-8, x+2, y-8)
	canvas.DrawLine(x+2, y-8, x+2, y-6)
}
