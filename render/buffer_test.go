package render

import "testing"

func TestBitmapPixelColors(t *testing.T) {
	b := NewBitmap(8, 8)

	b.DrawPixel(1, 1)
	if !b.At(1, 1) {
		t.Fatal("set pixel not lit")
	}

	b.SetDrawColor(ColorXor)
	b.DrawPixel(1, 1)
	b.DrawPixel(2, 2)
	if b.At(1, 1) {
		t.Error("xor did not switch lit pixel off")
	}
	if !b.At(2, 2) {
		t.Error("xor did not switch dark pixel on")
	}

	b.SetDrawColor(ColorClear)
	b.DrawPixel(2, 2)
	if b.At(2, 2) {
		t.Error("clear did not switch pixel off")
	}
	if b.Count() != 0 {
		t.Errorf("Count = %d, want 0", b.Count())
	}
}

func TestBitmapClipping(t *testing.T) {
	b := NewBitmap(4, 4)
	b.DrawPixel(-1, 0)
	b.DrawPixel(0, -1)
	b.DrawPixel(4, 0)
	b.DrawPixel(0, 4)
	b.DrawHLine(-2, 1, 10)
	if got := b.Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if b.At(-1, -1) || b.At(10, 10) {
		t.Error("At outside surface reported lit")
	}
}

func TestBitmapClearKeepsColor(t *testing.T) {
	b := NewBitmap(4, 4)
	b.DrawBox(0, 0, 4, 4)
	b.SetDrawColor(ColorXor)
	b.Clear()
	if b.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", b.Count())
	}
	if b.DrawColor() != ColorXor {
		t.Errorf("DrawColor = %d, want %d", b.DrawColor(), ColorXor)
	}
}

func TestBitmapShapes(t *testing.T) {
	tests := []struct {
		name string
		draw func(b *Bitmap)
		want int
	}{
		{"hline", func(b *Bitmap) { b.DrawHLine(2, 2, 5) }, 5},
		{"vline", func(b *Bitmap) { b.DrawVLine(2, 2, 5) }, 5},
		{"zero hline", func(b *Bitmap) { b.DrawHLine(2, 2, 0) }, 0},
		{"box", func(b *Bitmap) { b.DrawBox(1, 1, 3, 4) }, 12},
		{"frame", func(b *Bitmap) { b.DrawFrame(1, 1, 5, 4) }, 14},
		{"frame 1x1", func(b *Bitmap) { b.DrawFrame(1, 1, 1, 1) }, 1},
		{"frame 3x2", func(b *Bitmap) { b.DrawFrame(1, 1, 3, 2) }, 6},
		{"diagonal line", func(b *Bitmap) { b.DrawLine(0, 0, 5, 5) }, 6},
		{"reverse line", func(b *Bitmap) { b.DrawLine(5, 2, 0, 2) }, 6},
		{"point line", func(b *Bitmap) { b.DrawLine(3, 3, 3, 3) }, 1},
		{"circle r3", func(b *Bitmap) { b.DrawCircle(8, 8, 3) }, 16},
		{"circle r0", func(b *Bitmap) { b.DrawCircle(8, 8, 0) }, 1},
		{"disc r1", func(b *Bitmap) { b.DrawDisc(8, 8, 1) }, 9},
		{"disc r2", func(b *Bitmap) { b.DrawDisc(8, 8, 2) }, 21},
		{"disc r3", func(b *Bitmap) { b.DrawDisc(8, 8, 3) }, 37},
		{"triangle", func(b *Bitmap) { b.DrawTriangle(0, 0, 4, 0, 0, 4) }, 15},
		{"degenerate triangle", func(b *Bitmap) { b.DrawTriangle(0, 0, 2, 0, 4, 0) }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitmap(16, 16)
			tt.draw(b)
			if got := b.Count(); got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBitmapLineEndpoints(t *testing.T) {
	b := NewBitmap(16, 16)
	b.DrawLine(1, 9, 12, 3)
	if !b.At(1, 9) || !b.At(12, 3) {
		t.Error("line endpoints not drawn")
	}
}

func TestBitmapTriangleWinding(t *testing.T) {
	cw := NewBitmap(16, 16)
	ccw := NewBitmap(16, 16)
	cw.DrawTriangle(8, 2, 2, 12, 14, 12)
	ccw.DrawTriangle(8, 2, 14, 12, 2, 12)

	if cw.Count() == 0 {
		t.Fatal("triangle drew nothing")
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if cw.At(x, y) != ccw.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between windings", x, y)
			}
		}
	}
	if !cw.At(8, 2) || !cw.At(2, 12) || !cw.At(14, 12) || !cw.At(8, 8) {
		t.Error("triangle vertices or interior missing")
	}
}

func TestBitmapXorFrameInvertsBorder(t *testing.T) {
	b := NewBitmap(8, 8)
	b.DrawBox(0, 0, 8, 8)
	b.SetDrawColor(ColorXor)
	b.DrawFrame(0, 0, 8, 8)
	if got := b.Count(); got != 36 {
		t.Errorf("Count = %d, want 36 interior pixels", got)
	}
	if b.At(0, 0) || !b.At(1, 1) {
		t.Error("xor frame did not invert only the border")
	}
}
