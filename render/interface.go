package render

// Draw colors accepted by Canvas.SetDrawColor
const (
	ColorClear uint8 = 0 // pixels are switched off
	ColorSet   uint8 = 1 // pixels are switched on
	ColorXor   uint8 = 2 // pixels are inverted
)

// Canvas is the drawing capability set of a monochrome display
// Coordinates are integer pixels; anything outside the surface is clipped
type Canvas interface {
	DrawPixel(x, y int)
	DrawLine(x0, y0, x1, y1 int)
	DrawHLine(x, y, w int)
	DrawVLine(x, y, h int)
	DrawBox(x, y, w, h int)
	DrawFrame(x, y, w, h int)
	DrawCircle(x0, y0, r int)
	DrawDisc(x0, y0, r int)
	DrawTriangle(x0, y0, x1, y1, x2, y2 int)
	// DrawStr draws text with its baseline at y and returns the advance width
	DrawStr(x, y int, s string) int
	SetDrawColor(c uint8)
	Clear()
}

// Presenter pushes a finished frame to an output device
type Presenter interface {
	Present(b *Bitmap) error
}
