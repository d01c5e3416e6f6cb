package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputDelay keeps a held key from skipping the screen instantly
const inputDelay = 600 * time.Millisecond

// GameOverScreen shows the result of a finished run
type GameOverScreen struct {
	shownAt   time.Time
	score     int
	newBest   bool
	progress  *models.Progress
	onRestart func()
}

// NewGameOverScreen creates the result screen for a run that scored score
func NewGameOverScreen(score int, newBest bool, progress *models.Progress, onRestart func()) *GameOverScreen {
	return &GameOverScreen{
		shownAt:   time.Now(),
		score:     score,
		newBest:   newBest,
		progress:  progress,
		onRestart: onRestart,
	}
}

// Lines returns the result text, top to bottom
func (gs *GameOverScreen) Lines() []string {
	lines := []string{fmt.Sprintf("SCORE %d", gs.score)}
	if gs.newBest {
		lines = append(lines, "NEW BEST!")
	} else {
		lines = append(lines, fmt.Sprintf("BEST %d", gs.progress.Best))
	}
	lines = append(lines, fmt.Sprintf("COINS %d", gs.progress.Coins))
	return lines
}

// Update handles input for the result screen
func (gs *GameOverScreen) Update() error {
	if time.Since(gs.shownAt) < inputDelay {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		if gs.onRestart != nil {
			gs.onRestart()
		}
	}
	return nil
}

// Draw renders the result screen
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(color.RGBA{30, 10, 15, 255})

	render.DrawTextCentered(screen, "GAME OVER", width/2, height/4, 5, color.RGBA{255, 80, 80, 255})

	y := height/2 - 20
	for i, line := range gs.Lines() {
		c := color.RGBA{220, 220, 220, 255}
		if gs.newBest && i == 1 {
			c = color.RGBA{255, 220, 80, 255}
		}
		render.DrawTextCentered(screen, line, width/2, y, 2, c)
		y += 36
	}

	if time.Since(gs.shownAt) >= inputDelay {
		render.DrawTextCentered(screen, "Press ENTER to continue", width/2, height-80, 1.5, color.RGBA{150, 200, 255, 255})
	}
}
