// Package render draws a sim.State with ebiten. Drawing only reads the
// state; every animated value (shake, marking offset, particle fade) is
// already computed by the simulation.
package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/rush80/pkg/background"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	asphaltColor = color.RGBA{50, 50, 56, 255}
	markingColor = color.RGBA{235, 235, 235, 255}
	bulletColor  = color.RGBA{255, 230, 80, 255}
	bossShot     = color.RGBA{255, 60, 60, 255}
	miniColor    = color.RGBA{170, 60, 200, 255}
	monsterColor = color.RGBA{120, 200, 40, 255}
	bossColor    = color.RGBA{200, 30, 60, 255}
	sparkColor   = color.RGBA{255, 160, 40, 255}
)

// Renderer owns the textures and sprites used to draw a run
type Renderer struct {
	seed    int64
	verge   *ebiten.Image
	vergeW  int
	player  *ebiten.Image
	traffic *ebiten.Image
}

// New creates a renderer. Textures are built on first draw, once a
// graphics context exists.
func New(seed int64) *Renderer {
	return &Renderer{seed: seed}
}

func (r *Renderer) ensureTextures(s *sim.State) {
	if r.player == nil {
		r.player = carSprite(playerPaint)
		r.traffic = carSprite(trafficPaint)
	}

	w := int(math.Ceil(s.Layout.ShoulderWidth()))
	if w < 1 {
		w = 1
	}
	if r.verge == nil || r.vergeW != w {
		tile := int(s.Rules.MarkingTile)
		g := background.NewGenerator(w, max(tile, 1))
		r.verge = ebiten.NewImageFromImage(g.Verge(r.seed))
		r.vergeW = w
	}
}

// Draw renders the road, every entity and the HUD
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.State) {
	if !s.Layout.Ready() {
		screen.Fill(color.Black)
		return
	}
	r.ensureTextures(s)

	ox, oy := ShakeOffset(s.Shake, s.Runtime)

	r.drawRoad(screen, s, ox, oy)

	for _, t := range s.Traffic {
		r.drawCar(screen, r.traffic, t.Rect, 0, ox, oy)
	}
	for _, h := range s.Hostiles {
		drawHostile(screen, h, ox, oy)
	}
	for _, b := range s.Bullets {
		fillRect(screen, b.Rect, ox, oy, bulletColor)
	}
	for _, b := range s.BossShots {
		fillRect(screen, b.Rect, ox, oy, bossShot)
	}

	if s.Mode != sim.ModeGameOver {
		r.drawCar(screen, r.player, s.Player.Rect(), s.Player.Tilt*0.003, ox, oy)
		if s.Progress.Inventory.Shield {
			cx, cy := s.Player.Rect().Center()
			radius := float32(math.Max(s.Player.W, s.Player.H) * 0.65)
			vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), radius, 2, color.RGBA{90, 200, 255, 200}, true)
		}
	}

	for _, p := range s.Particles {
		alpha := uint8(255 * math.Max(0, math.Min(1, p.Life)))
		c := color.NRGBA{sparkColor.R, sparkColor.G, sparkColor.B, alpha}
		vector.DrawFilledRect(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Size), float32(p.Size), c, false)
	}

	drawHUD(screen, s)

	if s.Mode == sim.ModePaused {
		w, h := float32(s.Layout.Width), float32(s.Layout.Height)
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 150}, false)
		DrawTextCentered(screen, "PAUSED", s.Layout.Width/2, s.Layout.Height/2-24, 4, color.White)
		DrawTextCentered(screen, "P to resume", s.Layout.Width/2, s.Layout.Height/2+32, 1.5, color.RGBA{180, 180, 200, 255})
	}
}

func (r *Renderer) drawRoad(screen *ebiten.Image, s *sim.State, ox, oy float64) {
	screen.Fill(asphaltColor)

	// Verge strips scroll with the markings. The texture is one marking
	// tile tall and tiles vertically, so the offset wrap is invisible.
	sw := s.Layout.ShoulderWidth()
	th := float64(r.verge.Bounds().Dy())
	for y := s.RoadOffset - th; y < s.Layout.Height; y += th {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox, y+oy)
		screen.DrawImage(r.verge, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(s.Layout.Width+ox, y+oy)
		screen.DrawImage(r.verge, op)
	}
	edge := color.RGBA{230, 200, 40, 255}
	vector.DrawFilledRect(screen, float32(sw+ox), 0, 3, float32(s.Layout.Height), edge, false)
	vector.DrawFilledRect(screen, float32(s.Layout.Width-sw-3+ox), 0, 3, float32(s.Layout.Height), edge, false)

	tile := s.Rules.MarkingTile
	for i := 1; i < s.Layout.LaneCount; i++ {
		x := s.Layout.Divider(i) - 2 + ox
		for _, y := range Dashes(s.RoadOffset, s.Layout.Height, tile) {
			vector.DrawFilledRect(screen, float32(x), float32(y+oy), 4, float32(tile/2), markingColor, false)
		}
	}
}

// drawCar scales a car sprite into box, rotated by angle about its centre
func (r *Renderer) drawCar(screen, sprite *ebiten.Image, box sim.Rect, angle, ox, oy float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteW/2, -spriteH/2)
	op.GeoM.Scale(box.W/spriteW, box.H/spriteH)
	op.GeoM.Rotate(angle)
	cx, cy := box.Center()
	op.GeoM.Translate(cx+ox, cy+oy)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sprite, op)
}

func drawHostile(screen *ebiten.Image, h sim.Hostile, ox, oy float64) {
	switch h.Kind {
	case sim.KindBoss:
		fillRect(screen, h.Rect, ox, oy, bossColor)
		vector.StrokeRect(screen, float32(h.X+ox), float32(h.Y+oy), float32(h.W), float32(h.H), 3, color.Black, false)
		// Eyes
		vector.DrawFilledCircle(screen, float32(h.X+h.W*0.3+ox), float32(h.Y+h.H*0.4+oy), float32(h.H*0.12), color.White, true)
		vector.DrawFilledCircle(screen, float32(h.X+h.W*0.7+ox), float32(h.Y+h.H*0.4+oy), float32(h.H*0.12), color.White, true)
	case sim.KindMonster:
		fillRect(screen, h.Rect, ox, oy, monsterColor)
		vector.StrokeRect(screen, float32(h.X+ox), float32(h.Y+oy), float32(h.W), float32(h.H), 2, color.Black, false)
	default:
		cx, cy := h.Center()
		vector.DrawFilledCircle(screen, float32(cx+ox), float32(cy+oy), float32(math.Min(h.W, h.H)/2), miniColor, true)
	}

	if h.Kind != sim.KindBoss && h.MaxHP > 1 {
		frac := float64(h.HP) / float64(h.MaxHP)
		vector.DrawFilledRect(screen, float32(h.X+ox), float32(h.Y-6+oy), float32(h.W*frac), 3, color.RGBA{255, 80, 80, 255}, false)
	}
}

func fillRect(screen *ebiten.Image, b sim.Rect, ox, oy float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.W), float32(b.H), c, false)
}

// ShakeOffset returns the screen jitter for a shake magnitude. It is
// derived from the run clock so redrawing the same state gives the same frame.
func ShakeOffset(shake, runtime float64) (float64, float64) {
	if shake <= 0 {
		return 0, 0
	}
	return math.Sin(runtime*97) * shake, math.Cos(runtime*89) * shake
}

// Dashes returns the top Y of every lane-marking dash on screen.
// Dashes are tile/2 long, one per tile, shifted down by offset.
func Dashes(offset, height, tile float64) []float64 {
	if tile <= 0 {
		return nil
	}
	var ys []float64
	for y := offset - tile; y < height; y += tile {
		ys = append(ys, y)
	}
	return ys
}
