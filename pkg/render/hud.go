package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDLines returns the status lines shown in the top-left corner
func HUDLines(s *sim.State) []string {
	p := s.Progress
	lines := []string{
		fmt.Sprintf("SCORE %d", p.Score),
		fmt.Sprintf("BEST  %d", p.Best),
		fmt.Sprintf("COINS %d", p.Coins),
	}
	if s.Rules.Hearts {
		lines = append(lines, fmt.Sprintf("HEARTS %d", p.Hearts))
	}
	lines = append(lines, fmt.Sprintf("RING  %d", p.Ring))
	if s.Rules.Combo && s.Combo > 0 {
		lines = append(lines, fmt.Sprintf("COMBO %d x%d", s.Combo, s.ComboMultiplier()))
	}
	if s.DoubleTimer > 0 {
		lines = append(lines, fmt.Sprintf("DOUBLE %.0fs", math.Ceil(s.DoubleTimer)))
	}
	return lines
}

// PhaseBanner returns the centred banner for the combat phase, empty while cruising
func PhaseBanner(s *sim.State) string {
	switch s.Phase {
	case sim.PhaseWave:
		return fmt.Sprintf("WAVE  %d/%d", s.WaveKills(), s.Rules.WaveKillQuota)
	case sim.PhaseBoss:
		return "BOSS"
	}
	return ""
}

func drawHUD(screen *ebiten.Image, s *sim.State) {
	panelW := 150.0
	lines := HUDLines(s)
	panelH := float64(len(lines))*16 + 12
	vector.DrawFilledRect(screen, 8, 8, float32(panelW), float32(panelH), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, 8, 8, float32(panelW), float32(panelH), 2, color.RGBA{100, 100, 120, 255}, false)

	for i, line := range lines {
		DrawText(screen, line, 16, 14+float64(i)*16, 1, color.RGBA{220, 220, 230, 255})
	}

	drawSpeedGauge(screen, s.Layout.Width-130, 14, 116, 12, s.Speed/s.Rules.MaxSpeed)
	DrawText(screen, fmt.Sprintf("%3.0f", s.Speed), s.Layout.Width-130, 30, 1, color.RGBA{200, 200, 200, 255})

	if banner := PhaseBanner(s); banner != "" {
		DrawTextCentered(screen, banner, s.Layout.Width/2, 40, 2, color.RGBA{255, 200, 50, 255})
	}

	if boss, ok := s.Boss(); ok && boss.MaxHP > 0 {
		frac := float64(boss.HP) / float64(boss.MaxHP)
		w := s.Layout.Width * 0.6
		x := (s.Layout.Width - w) / 2
		vector.DrawFilledRect(screen, float32(x), 24, float32(w), 8, color.RGBA{40, 40, 40, 255}, false)
		vector.DrawFilledRect(screen, float32(x), 24, float32(w*frac), 8, bossColor, false)
	}
}

// drawSpeedGauge draws a horizontal bar filled to frac, green to yellow to red
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, frac float64) {
	frac = math.Max(0, math.Min(frac, 1))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	var bar color.RGBA
	if frac < 0.5 {
		ratio := frac / 0.5
		bar = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	} else {
		ratio := (frac - 0.5) / 0.5
		bar = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
	}
	if w := width * frac; w > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(height), bar, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}
