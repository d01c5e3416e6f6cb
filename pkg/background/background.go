// Package background paints the roadside verge shown on both shoulders.
// Textures are plain images so they can be generated and checked without a
// graphics context; the renderer uploads them once.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates verge textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a generator for textures of the given size
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Verge creates a grass strip with bushes and small trees.
// The texture tiles vertically: equal seeds give equal images.
func (g *Generator) Verge(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	base := color.RGBA{30, 100, 30, 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = base.R, base.G, base.B, base.A
	}

	// Grass speckle
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)

		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			px := x + rng.Intn(10) - 5
			py := y + rng.Intn(10) - 5

			if rng.Float64() < 0.3 {
				g.tree(img, px, py, rng)
			} else {
				g.bush(img, px, py, rng)
			}
		}
	}

	return img
}

// Asphalt creates a dark road surface with fine grit
func (g *Generator) Asphalt(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := uint8(40 + rng.Intn(12))
			img.SetRGBA(x, y, color.RGBA{v, v, v + 4, 255})
		}
	}
	return img
}

// set writes a pixel, wrapping vertically so the texture tiles while scrolling
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width || g.Height == 0 {
		return
	}
	y %= g.Height
	if y < 0 {
		y += g.Height
	}
	img.SetRGBA(x, y, c)
}

func (g *Generator) tree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 24 + rng.Intn(18)
	width := 12 + rng.Intn(9)

	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 2 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx <= trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	third := height / 3
	for l := 0; l < 3; l++ {
		layerY := y - third - l*height/4
		layerW := max(width-l*4, 4)

		for ly := 0; ly < third; ly++ {
			rowW := layerW * (third - ly) / third
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

func (g *Generator) bush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
