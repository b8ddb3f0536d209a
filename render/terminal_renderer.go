package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TerminalRenderer presents bitmaps on a tcell screen
// Each terminal cell shows two vertically stacked pixels using half-block glyphs
type TerminalRenderer struct {
	screen   tcell.Screen
	phosphor Phosphor
	caption  string
}

// NewTerminalRenderer wraps an initialized screen
func NewTerminalRenderer(screen tcell.Screen, phosphor Phosphor) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		phosphor: phosphor,
	}
}

// NewScreen creates and initializes a tcell screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	return screen, nil
}

// SetCaption sets the text line shown under the panel
func (r *TerminalRenderer) SetCaption(s string) {
	r.caption = s
}

// Origin returns the top-left cell of the panel, centred in the terminal
// Negative values mean the terminal is smaller than the panel
func (r *TerminalRenderer) Origin(b *Bitmap) (int, int) {
	w, h := r.screen.Size()
	rows := (b.Height() + 1) / 2
	return (w - b.Width()) / 2, (h - rows - 1) / 2
}

// Present draws the bitmap and shows the screen
func (r *TerminalRenderer) Present(b *Bitmap) error {
	if b == nil {
		return errors.New("present: nil bitmap")
	}

	r.screen.Clear()
	ox, oy := r.Origin(b)
	style := r.phosphor.Style()

	for row := 0; row*2 < b.Height(); row++ {
		for x := 0; x < b.Width(); x++ {
			ch := halfBlock(b.At(x, row*2), b.At(x, row*2+1))
			r.screen.SetContent(ox+x, oy+row, ch, nil, style)
		}
	}

	if r.caption != "" {
		cy := oy + (b.Height()+1)/2 + 1
		cs := r.phosphor.CaptionStyle()
		for i, ch := range []rune(r.caption) {
			r.screen.SetContent(ox+i, cy, ch, nil, cs)
		}
	}

	r.screen.Show()
	return nil
}
