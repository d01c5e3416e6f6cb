package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite size in texels; cars are scaled to the layout when drawn
const (
	spriteW = 40
	spriteH = 64
)

// carPaint is the colour scheme of a car sprite
type carPaint struct {
	body, roof, highlight color.RGBA
}

var (
	playerPaint  = carPaint{body: color.RGBA{220, 20, 20, 255}, roof: color.RGBA{180, 15, 15, 255}, highlight: color.RGBA{255, 100, 100, 255}}
	trafficPaint = carPaint{body: color.RGBA{40, 110, 220, 255}, roof: color.RGBA{30, 80, 170, 255}, highlight: color.RGBA{120, 170, 255, 255}}
)

// carSprite paints a top-down retro car facing up
func carSprite(p carPaint) *ebiten.Image {
	img := ebiten.NewImage(spriteW, spriteH)

	fill := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.Set(x, y, c)
			}
		}
	}

	fill(5, 10, 35, 54, p.body)
	fill(8, 15, 32, 35, p.roof)

	glass := color.RGBA{100, 180, 220, 255}
	for y := 16; y < 28; y++ {
		for x := 10; x < 30; x++ {
			if y < 22 || (x > 12 && x < 28) {
				img.Set(x, y, glass)
			}
		}
	}

	wheel := color.RGBA{40, 40, 40, 255}
	fill(2, 12, 8, 20, wheel)
	fill(32, 12, 38, 20, wheel)
	fill(2, 44, 8, 52, wheel)
	fill(32, 44, 38, 52, wheel)

	fill(8, 12, 32, 14, p.highlight)

	outline := color.RGBA{0, 0, 0, 255}
	for x := 5; x < 35; x++ {
		img.Set(x, 10, outline)
		img.Set(x, 53, outline)
	}
	for y := 10; y < 54; y++ {
		img.Set(5, y, outline)
		img.Set(34, y, outline)
	}

	fill(10, 8, 14, 11, color.RGBA{255, 255, 100, 255})
	fill(26, 8, 30, 11, color.RGBA{255, 255, 100, 255})
	fill(10, 53, 14, 56, color.RGBA{255, 0, 0, 255})
	fill(26, 53, 30, 56, color.RGBA{255, 0, 0, 255})

	return img
}
