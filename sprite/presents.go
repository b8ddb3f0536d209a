package sprite

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/render"
)

// DrawPresent draws a box of w×h standing on (x, y) with ribbon and bow
func DrawPresent(canvas render.Canvas, x, y, w, h int) {
	canvas.DrawBox(x-w/2, y-h, w, h)

	canvas.DrawLine(x, y-h, x, y-h-2)
	canvas.DrawLine(x-w/2+1, y-h/2, x+w/2-1, y-h/2)

	canvas.DrawPixel(x-1, y-h-2)
	canvas.DrawPixel(x+1, y-h-2)
}

// DrawPresents draws the pile of three presents at the lower right
func DrawPresents(canvas render.Canvas) {
	x := constants.XOffset + constants.FrameWidth - 12
	y := constants.YOffset + constants.FrameHeight - 6
	DrawPresent(canvas, x, y, 6, 4)

	x -= 8
	y++
	DrawPresent(canvas, x, y, 4, 3)

	x += 10
	y -= 3
	DrawPresent(canvas, x, y, 3, 2)
}
