package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Menu entries on the title screen
const (
	OptionStart = iota
	OptionShop
)

var titleOptions = []string{"START", "SHOP"}

// TitleScreen is the main menu
type TitleScreen struct {
	startTime time.Time
	progress  *models.Progress
	variant   string
	selected  int
	onStart   func()
	onShop    func()
}

// NewTitleScreen creates the menu. onStart begins a run, onShop opens the shop.
func NewTitleScreen(progress *models.Progress, variant string, onStart, onShop func()) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		progress:  progress,
		variant:   variant,
		onStart:   onStart,
		onShop:    onShop,
	}
}

// Selected returns the highlighted menu entry
func (ts *TitleScreen) Selected() int {
	return ts.selected
}

// Navigate moves the highlight by dir entries, wrapping at both ends
func (ts *TitleScreen) Navigate(dir int) {
	n := len(titleOptions)
	ts.selected = ((ts.selected+dir)%n + n) % n
}

// Confirm runs the highlighted entry
func (ts *TitleScreen) Confirm() {
	switch ts.selected {
	case OptionStart:
		if ts.onStart != nil {
			ts.onStart()
		}
	case OptionShop:
		if ts.onShop != nil {
			ts.onShop()
		}
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ts.Navigate(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ts.Navigate(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ts.selected = OptionShop
		ts.Confirm()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		ts.Confirm()
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := width / 2

	// Pulsing gold title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{uint8(255 * brightness), uint8(200 * brightness), uint8(50 * brightness), 255}
	render.DrawTextCentered(screen, "RUSH 80", centerX, height/4, 6*pulse, titleColor)
	render.DrawTextCentered(screen, "Lane Dodge", centerX, height/4+80, 2, color.RGBA{180, 180, 200, 255})

	stats := fmt.Sprintf("BEST %d   COINS %d", ts.progress.Best, ts.progress.Coins)
	render.DrawTextCentered(screen, stats, centerX, height/2-10, 1.5, color.RGBA{200, 200, 210, 255})
	if ts.progress.Score > 0 {
		resume := fmt.Sprintf("Resume at %d points, ring %d", ts.progress.Score, ts.progress.Ring)
		render.DrawTextCentered(screen, resume, centerX, height/2+16, 1, color.RGBA{150, 200, 255, 255})
	}

	for i, label := range titleOptions {
		y := height/2 + 60 + float64(i)*40
		c := color.RGBA{150, 150, 170, 255}
		if i == ts.selected {
			c = color.RGBA{255, 220, 80, 255}
			label = "> " + label + " <"
		}
		render.DrawTextCentered(screen, label, centerX, y, 2, c)
	}

	if int(elapsed*2)%2 == 0 {
		render.DrawTextCentered(screen, "ENTER to select, arrows to steer", centerX, height-60, 1, color.RGBA{150, 200, 255, 255})
	}
	render.DrawTextCentered(screen, "mode: "+ts.variant, centerX, height-36, 1, color.RGBA{110, 110, 130, 255})

	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height/6), float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height*5/6), float32(width), 2, lineColor, false)
}
