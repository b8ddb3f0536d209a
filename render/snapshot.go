package render

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// SnapshotPrinter writes bitmaps as half-block text
// Color is used only when the destination is a terminal that supports it
type SnapshotPrinter struct {
	out      *termenv.Output
	w        io.Writer
	lit      string
	glass    string
	colorize bool
}

// NewSnapshotPrinter creates a printer writing to w
func NewSnapshotPrinter(w io.Writer, phosphor Phosphor) *SnapshotPrinter {
	colorize := false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colorize = true
	}

	var out *termenv.Output
	if colorize {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	lit, glass := phosphor.Hex()
	return &SnapshotPrinter{
		out:      out,
		w:        w,
		lit:      lit,
		glass:    glass,
		colorize: colorize && out.Profile != termenv.Ascii,
	}
}

// Present writes one frame followed by a blank line
func (p *SnapshotPrinter) Present(b *Bitmap) error {
	if b == nil {
		return errors.New("snapshot: nil bitmap")
	}

	var sb strings.Builder
	for row := 0; row*2 < b.Height(); row++ {
		var line strings.Builder
		for x := 0; x < b.Width(); x++ {
			line.WriteRune(halfBlock(b.At(x, row*2), b.At(x, row*2+1)))
		}
		text := line.String()
		if p.colorize {
			text = p.out.String(text).
				Foreground(p.out.Color(p.lit)).
				Background(p.out.Color(p.glass)).
				String()
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}
