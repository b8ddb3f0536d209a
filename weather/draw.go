package weather

import (
	"github.com/lixenwraith/oled-xmas/constants"
	"github.com/lixenwraith/oled-xmas/particle"
	"github.com/lixenwraith/oled-xmas/render"
)

// DrawParticles renders active particles
// Every 4th snow slot is a 2x2 flake, other flakes are single pixels; rain is a
// 2-pixel streak and stars are single pixels
func DrawParticles(canvas render.Canvas, pool *particle.Pool) {
	for slot, p := range pool.Active() {
		x, y := int(p.X), int(p.Y)
		switch p.Kind {
		case particle.KindSnow:
			if slot%4 == 0 {
				canvas.DrawBox(x, y, 2, 2)
			} else {
				canvas.DrawPixel(x, y)
			}
		case particle.KindRain:
			canvas.DrawVLine(x, y, 2)
		case particle.KindStar:
			canvas.DrawPixel(x, y)
		}
	}
}

// ConstellationPoint returns the position of star i of the clear-sky pattern
func ConstellationPoint(i int) (int, int) {
	return constants.XOffset + constants.FrameWidth*i/4,
		constants.YOffset + 5 + (i%2)*3
}

// DrawConstellation draws the fixed clear-sky star pattern
func DrawConstellation(canvas render.Canvas) {
	for i := 0; i < constants.ConstellationSize; i++ {
		canvas.DrawPixel(ConstellationPoint(i))
	}
}
