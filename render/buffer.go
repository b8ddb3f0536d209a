package render

// Bitmap is a 1-bit frame buffer implementing Canvas
type Bitmap struct {
	pix    []bool
	width  int
	height int
	color  uint8
}

var _ Canvas = (*Bitmap)(nil)

// NewBitmap creates a cleared bitmap drawing in ColorSet
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		pix:    make([]bool, width*height),
		width:  width,
		height: height,
		color:  ColorSet,
	}
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// At reports whether the pixel is lit; false outside the surface
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	return b.pix[y*b.width+x]
}

// Count returns the number of lit pixels
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// Clear switches every pixel off; the draw color is kept
func (b *Bitmap) Clear() {
	clear(b.pix)
}

func (b *Bitmap) SetDrawColor(c uint8) {
	b.color = c
}

// DrawColor returns the active draw color
func (b *Bitmap) DrawColor() uint8 {
	return b.color
}

func (b *Bitmap) DrawPixel(x, y int) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	switch b.color {
	case ColorClear:
		b.pix[i] = false
	case ColorXor:
		b.pix[i] = !b.pix[i]
	default:
		b.pix[i] = true
	}
}

func (b *Bitmap) DrawHLine(x, y, w int) {
	for i := 0; i < w; i++ {
		b.DrawPixel(x+i, y)
	}
}

func (b *Bitmap) DrawVLine(x, y, h int) {
	for i := 0; i < h; i++ {
		b.DrawPixel(x, y+i)
	}
}

// DrawLine uses Bresenham's algorithm, both endpoints inclusive
func (b *Bitmap) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.DrawPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Bitmap) DrawBox(x, y, w, h int) {
	for i := 0; i < h; i++ {
		b.DrawHLine(x, y+i, w)
	}
}

// DrawFrame draws the outline of a w×h rectangle
func (b *Bitmap) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.DrawHLine(x, y, w)
	if h > 1 {
		b.DrawHLine(x, y+h-1, w)
	}
	if h > 2 {
		b.DrawVLine(x, y+1, h-2)
		if w > 1 {
			b.DrawVLine(x+w-1, y+1, h-2)
		}
	}
}

// DrawCircle draws a midpoint circle outline of radius r
func (b *Bitmap) DrawCircle(x0, y0, r int) {
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		b.DrawPixel(x0+x, y0+y)
		b.DrawPixel(x0+y, y0+x)
		b.DrawPixel(x0-y, y0+x)
		b.DrawPixel(x0-x, y0+y)
		b.DrawPixel(x0-x, y0-y)
		b.DrawPixel(x0-y, y0-x)
		b.DrawPixel(x0+y, y0-x)
		b.DrawPixel(x0+x, y0-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawDisc fills every pixel within radius r of the centre (x²+y² <= r²+r)
func (b *Bitmap) DrawDisc(x0, y0, r int) {
	if r < 0 {
		return
	}
	limit := r*r + r
	for dy := -r; dy <= r; dy++ {
		span := 0
		for (span+1)*(span+1)+dy*dy <= limit {
			span++
		}
		b.DrawHLine(x0-span, y0+dy, 2*span+1)
	}
}

// DrawTriangle fills the triangle including its edges
func (b *Bitmap) DrawTriangle(x0, y0, x1, y1, x2, y2 int) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		b.DrawLine(x0, y0, x1, y1)
		b.DrawLine(x1, y1, x2, y2)
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(x1, y1, x2, y2, x, y)
			w1 := edge(x2, y2, x0, y0, x, y)
			w2 := edge(x0, y0, x1, y1, x, y)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b.DrawPixel(x, y)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
