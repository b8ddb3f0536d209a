package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPhosphor is the lit pixel color of the reference panel (white OLED)
const DefaultPhosphor = "#e8f4ff"

// glassTint is how much of the phosphor color bleeds into unlit glass
const glassTint = 0.06

// Phosphor is the color pair used to show a monochrome panel on a color terminal
type Phosphor struct {
	Lit   colorful.Color
	Glass colorful.Color
}

// NewPhosphor parses a hex color and derives a faintly tinted glass color from it
func NewPhosphor(hex string) (Phosphor, error) {
	lit, err := colorful.Hex(hex)
	if err != nil {
		return Phosphor{}, fmt.Errorf("invalid phosphor color %q: %w", hex, err)
	}
	black := colorful.Color{}
	return Phosphor{
		Lit:   lit,
		Glass: black.BlendLab(lit, glassTint).Clamped(),
	}, nil
}

// Hex returns the lit and glass colors as #rrggbb strings
func (p Phosphor) Hex() (lit, glass string) {
	return p.Lit.Clamped().Hex(), p.Glass.Hex()
}

// Style returns the tcell style drawing lit pixels over glass
func (p Phosphor) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(p.Lit)).
		Background(toTcell(p.Glass))
}

// CaptionStyle is the dimmed style for text under the panel
func (p Phosphor) CaptionStyle() tcell.Style {
	dim := p.Glass.BlendLab(p.Lit, 0.45).Clamped()
	return tcell.StyleDefault.Foreground(toTcell(dim))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// halfBlock maps a vertical pixel pair to a terminal glyph
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
