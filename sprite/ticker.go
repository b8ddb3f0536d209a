package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/engine"
	"github.com/lixenwraith/oled-xmas/render"
)

const tickerStartX = constants.XOffset + constants.FrameWidth

// Ticker scrolls a line of text right to left along the bottom of the frame
type Ticker struct {
	gate  *engine.IntervalGate
	text  string
	x     int
	wrapX int
}

// NewTicker creates a ticker entering from the right edge
// The text wraps once it has travelled ScrollTextGap past the left edge, or its
// full width when it is longer, so it always leaves the frame before restarting
func NewTicker(text string) *Ticker {
	return &Ticker{
		gate:  engine.NewIntervalGate(constants.TextScrollMs),
		text:  text,
		x:     tickerStartX,
		wrapX: constants.XOffset - max(constants.ScrollTextGap, render.TextWidth(text)),
	}
}

// WrapX returns the left edge position below which the text restarts
func (t *Ticker) WrapX() int {
	return t.wrapX
}

// X returns the text's left edge
func (t *Ticker) X() int {
	return t.x
}

func (t *Ticker) Draw(now engine.Millis, canvas render.Canvas) {
	if t.gate.ShouldFire(now) {
		t.x--
		if t.x < t.wrapX {
			t.x = tickerStartX
		}
	}
	canvas.DrawStr(t.x, constants.YOffset+constants.FrameHeight-2, t.text)
}
