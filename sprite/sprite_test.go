package sprite

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

func newCanvas() *render.Bitmap {
	return render.NewBitmap(constants.ScreenWidth, constants.ScreenHeight)
}

// inFrame reports whether every lit pixel lies in the animation frame
func inFrame(c *render.Bitmap) (int, int, bool) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.At(x, y) {
				continue
			}
			if x < constants.XOffset || x >= constants.XOffset+constants.FrameWidth ||
				y < constants.YOffset || y >= constants.YOffset+constants.FrameHeight {
				return x, y, false
			}
		}
	}
	return 0, 0, true
}

func TestStarBrightnessPingPong(t *testing.T) {
	s := NewStar()
	want := []int{1, 2, 3, 2, 1, 0, 1, 2}
	for i, w := range want {
		s.Animate(engine.Millis((i + 1) * constants.StarAnimationMs))
		if got := s.Brightness(); got != w {
			t.Errorf("step %d brightness = %d, want %d", i, got, w)
		}
	}
}

func TestStarHoldsBetweenSteps(t *testing.T) {
	s := NewStar()
	s.Animate(50)
	s.Animate(60)
	s.Animate(99)
	if got := s.Brightness(); got != 1 {
		t.Errorf("brightness = %d, want 1", got)
	}
}

func TestSnowmanArmSwing(t *testing.T) {
	s := NewSnowman()
	canvas := newCanvas()
	want := []int{1, 2, 1, 0, -1, 0, 1}
	for i, w := range want {
		s.Draw(engine.Millis((i+1)*constants.ArmAnimationMs), canvas)
		if got := s.Arm(); got != w {
			t.Errorf("step %d arm = %d, want %d", i, got, w)
		}
	}
}

func TestSleighPass(t *testing.T) {
	s := NewSleigh()
	canvas := newCanvas()
	if s.Visible() {
		t.Fatal("sleigh visible before first draw")
	}

	s.Draw(0, canvas)
	if !s.Visible() || s.X() != sleighStartX+1 {
		t.Fatalf("after first draw visible=%v x=%d, want true %d", s.Visible(), s.X(), sleighStartX+1)
	}
	if got := s.Altitude(); got <= 0 || got >= constants.SleighClimbOffset {
		t.Errorf("altitude after first draw = %v, want in (0, %d)", got, constants.SleighClimbOffset)
	}

	draws := 1
	for s.Visible() {
		s.Draw(0, canvas)
		draws++
		if draws > 1000 {
			t.Fatal("sleigh pass never ended")
		}
	}
	if want := sleighEndX - sleighStartX + 1; draws != want {
		t.Errorf("pass took %d draws, want %d", draws, want)
	}
	if s.Altitude() != 0 {
		t.Errorf("altitude at end of pass = %v, want 0", s.Altitude())
	}

	// The next draw starts over from the left
	s.Draw(0, canvas)
	if s.X() != sleighStartX+1 {
		t.Errorf("x after restart = %d, want %d", s.X(), sleighStartX+1)
	}
}

func TestSleighReset(t *testing.T) {
	s := NewSleigh()
	canvas := newCanvas()
	for i := 0; i < 20; i++ {
		s.Draw(0, canvas)
	}
	s.Reset(0)
	if s.Visible() || s.X() != sleighStartX || s.Altitude() != 0 {
		t.Errorf("after Reset visible=%v x=%d altitude=%v", s.Visible(), s.X(), s.Altitude())
	}
}

func TestTickerScrollAndWrap(t *testing.T) {
	tk := NewTicker(constants.ScrollText)
	canvas := newCanvas()
	if tk.X() != tickerStartX {
		t.Fatalf("start x = %d, want %d", tk.X(), tickerStartX)
	}

	tk.Draw(50, canvas)
	if tk.X() != tickerStartX {
		t.Errorf("x moved before the scroll interval: %d", tk.X())
	}

	steps := tickerStartX - tk.WrapX()
	for i := 1; i <= steps; i++ {
		tk.Draw(engine.Millis(i*constants.TextScrollMs), canvas)
	}
	if tk.X() != tk.WrapX() {
		t.Fatalf("x after %d steps = %d, want %d", steps, tk.X(), tk.WrapX())
	}

	tk.Draw(engine.Millis((steps+1)*constants.TextScrollMs), canvas)
	if tk.X() != tickerStartX {
		t.Errorf("x after wrap = %d, want %d", tk.X(), tickerStartX)
	}
}

func TestTickerWrapLeavesFrame(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{constants.ScrollText, constants.XOffset - constants.ScrollTextGap},
		{"SEASONS GREETINGS TO ALL", constants.XOffset - render.TextWidth("SEASONS GREETINGS TO ALL")},
	}
	for _, tt := range tests {
		tk := NewTicker(tt.text)
		if got := tk.WrapX(); got != tt.want {
			t.Errorf("WrapX(%q) = %d, want %d", tt.text, got, tt.want)
		}
		if tk.WrapX()+render.TextWidth(tt.text) > constants.XOffset {
			t.Errorf("%q still overlaps the frame at its wrap point", tt.text)
		}
	}
}

func TestFireplacePattern(t *testing.T) {
	f := NewFireplace(rand.New(rand.NewSource(5)))
	seen := make(map[int]bool)
	for i := 1; i <= 200; i++ {
		canvas := newCanvas()
		f.Draw(engine.Millis(i*constants.FlameAnimationMs), canvas)
		p := f.Pattern()
		if p < 0 || p >= 4 {
			t.Fatalf("pattern %d outside [0,4)", p)
		}
		seen[p] = true
		if x, y, ok := inFrame(canvas); !ok {
			t.Fatalf("fireplace pixel (%d,%d) outside frame", x, y)
		}
	}
	if len(seen) != 4 {
		t.Errorf("saw patterns %v, want all four", seen)
	}
}

func TestTreeTwinkle(t *testing.T) {
	tr := NewTree()
	canvas := newCanvas()
	tr.Draw(499, canvas)
	if tr.TwinkleFrame() != 0 {
		t.Errorf("twinkle frame before interval = %d, want 0", tr.TwinkleFrame())
	}
	tr.Draw(500, canvas)
	tr.Draw(1000, canvas)
	if tr.TwinkleFrame() != 2 {
		t.Errorf("twinkle frame = %d, want 2", tr.TwinkleFrame())
	}
	tr.Reset(1000)
	tr.Draw(1200, canvas)
	if tr.TwinkleFrame() != 2 {
		t.Errorf("twinkle frame after reset = %d, want 2", tr.TwinkleFrame())
	}
}

func TestStaticSpritesStayInFrame(t *testing.T) {
	tests := []struct {
		name string
		draw func(c render.Canvas)
	}{
		{"tree", func(c render.Canvas) { NewTree().Draw(0, c) }},
		{"star", func(c render.Canvas) {
			s := NewStar()
			for i := 1; i <= 3; i++ {
				s.Animate(engine.Millis(i * constants.StarAnimationMs))
			}
			s.Draw(150, c)
		}},
		{"snowman", func(c render.Canvas) { NewSnowman().Draw(0, c) }},
		{"presents", DrawPresents},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newCanvas()
			tt.draw(canvas)
			if canvas.Count() == 0 {
				t.Fatal("drew nothing")
			}
			if x, y, ok := inFrame(canvas); !ok {
				t.Errorf("pixel (%d,%d) outside frame", x, y)
			}
		})
	}
}
