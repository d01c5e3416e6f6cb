// Package term plays the game in a terminal with tcell. Each cell stands
// for a CellWidth x CellHeight block of simulation space.
package term

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/golangdaddy/rush80/pkg/storage"
)

// Simulation units per terminal cell
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const frameInterval = 16 * time.Millisecond

// Sounds plays effects for simulation events
type Sounds interface {
	Handle(events []sim.Event)
}

// Terminal drives one simulation on a tcell screen
type Terminal struct {
	screen tcell.Screen
	state  *sim.State
	store  storage.Store
	sounds Sounds

	cols, rows int
	lastTick   time.Time
}

// New creates a terminal client. sounds may be nil.
func New(screen tcell.Screen, state *sim.State, store storage.Store, sounds Sounds) *Terminal {
	t := &Terminal{
		screen: screen,
		state:  state,
		store:  store,
		sounds: sounds,
	}
	t.resize()
	return t
}

func (t *Terminal) resize() {
	t.cols, t.rows = t.screen.Size()
	// The top row holds the HUD
	t.state.Resize(float64(t.cols)*CellWidth, float64(max(t.rows-1, 1))*CellHeight)
}

// Run polls input and ticks the simulation until quit or ctx is done.
// Progress is saved on the way out.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.shutdown()
			return ctx.Err()

		case ev := <-events:
			if !t.HandleEvent(ev) {
				t.shutdown()
				return nil
			}

		case now := <-ticker.C:
			dt := 0.0
			if !t.lastTick.IsZero() {
				dt = now.Sub(t.lastTick).Seconds()
			}
			t.lastTick = now
			t.Step(dt)
			t.Draw()
		}
	}
}

func (t *Terminal) shutdown() {
	t.state.Suspend()
	t.handle(t.state.Drain())
}

// Step advances the simulation and handles its events
func (t *Terminal) Step(dt float64) {
	t.handle(t.state.Update(dt))
}

func (t *Terminal) handle(events []sim.Event) {
	if len(events) == 0 {
		return
	}
	if t.sounds != nil {
		t.sounds.Handle(events)
	}
	if sim.Has(events, sim.EventPersist) {
		if err := t.state.Progress.Save(t.store); err != nil {
			log.Printf("Failed to save progress: %v", err)
		}
	}
}

// HandleEvent applies one tcell event, returning false when the player quits
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	s := t.state

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		s.Move(-1)
		return true
	case tcell.KeyRight:
		s.Move(1)
		return true
	case tcell.KeyEnter:
		switch s.Mode {
		case sim.ModeMenu:
			if err := s.Start(); err != nil {
				log.Printf("Failed to start run: %v", err)
			}
			t.lastTick = time.Time{}
		case sim.ModeGameOver:
			s.Restart()
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'h':
		s.Move(-1)
	case 'l':
		s.Move(1)
	case 'p':
		s.TogglePause()
	case 'f':
		if h, ok := s.Target(); ok {
			s.Fire(h.Center())
		}
	case '1', '2', '3', '4':
		i := int(r - '1')
		if s.Mode == sim.ModeMenu && i < len(models.Catalogue) {
			if err := s.Buy(models.Catalogue[i].Name); err != nil {
				log.Printf("Purchase of %s failed: %v", models.Catalogue[i].Name, err)
			}
		}
	}
	return true
}

var (
	styleRoad     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleVerge    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	styleMarking  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleTraffic  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack)
	styleHostile  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorBlack)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
)

// Glyphs used on the road
const (
	GlyphPlayer  = 'A'
	GlyphTraffic = '#'
	GlyphMini    = 'm'
	GlyphMonster = 'M'
	GlyphBoss    = 'B'
	GlyphBullet  = '|'
	GlyphShot    = '!'
)

// Draw renders the current state
func (t *Terminal) Draw() {
	t.screen.Clear()
	s := t.state

	t.drawRoad()

	for _, tr := range s.Traffic {
		t.fill(tr.Rect, GlyphTraffic, styleTraffic)
	}
	for _, h := range s.Hostiles {
		switch h.Kind {
		case sim.KindBoss:
			t.fill(h.Rect, GlyphBoss, styleBoss)
		case sim.KindMonster:
			t.fill(h.Rect, GlyphMonster, styleHostile)
		default:
			t.fill(h.Rect, GlyphMini, styleHostile)
		}
	}
	for _, b := range s.Bullets {
		t.fill(b.Rect, GlyphBullet, styleBullet)
	}
	for _, b := range s.BossShots {
		t.fill(b.Rect, GlyphShot, styleBullet)
	}
	for _, p := range s.Particles {
		t.put(p.X, p.Y, '*', styleParticle)
	}
	if s.Mode == sim.ModePlaying || s.Mode == sim.ModePaused {
		t.fill(s.Player.Rect(), GlyphPlayer, stylePlayer)
	}

	t.drawHUD()

	switch s.Mode {
	case sim.ModeMenu:
		t.banner(t.rows/2-2, "RUSH 80")
		t.banner(t.rows/2, fmt.Sprintf("BEST %d  COINS %d", s.Progress.Best, s.Progress.Coins))
		t.banner(t.rows/2+2, "ENTER start  1-4 buy  q quit")
	case sim.ModePaused:
		t.banner(t.rows/2, "PAUSED - p to resume")
	case sim.ModeGameOver:
		t.banner(t.rows/2-1, "GAME OVER")
		t.banner(t.rows/2+1, fmt.Sprintf("SCORE %d  BEST %d", s.LastScore, s.Progress.Best))
	}

	t.screen.Show()
}

func (t *Terminal) drawRoad() {
	s := t.state
	vergeCols := int(math.Ceil(s.Layout.ShoulderWidth() / CellWidth))
	tile := s.Rules.MarkingTile

	for row := 1; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			r, st := ' ', styleRoad
			if col < vergeCols || col >= t.cols-vergeCols {
				r, st = '"', styleVerge
			}
			t.screen.SetContent(col, row, r, nil, st)
		}

		// Dashes scroll with the marking offset
		y := float64(row-1) * CellHeight
		if math.Mod(y-s.RoadOffset+4*tile, tile) >= tile/2 {
			continue
		}
		for i := 1; i < s.Layout.LaneCount; i++ {
			col := int(s.Layout.Divider(i) / CellWidth)
			t.screen.SetContent(col, row, ':', nil, styleMarking)
		}
	}
}

func (t *Terminal) drawHUD() {
	p := t.state.Progress
	line := fmt.Sprintf(" SCORE %d  COINS %d  RING %d  SPD %.0f", p.Score, p.Coins, p.Ring, t.state.Speed)
	if t.state.Rules.Hearts {
		line += fmt.Sprintf("  HEARTS %d", p.Hearts)
	}
	switch t.state.Phase {
	case sim.PhaseWave:
		line += fmt.Sprintf("  WAVE %d/%d", t.state.WaveKills(), t.state.Rules.WaveKillQuota)
	case sim.PhaseBoss:
		if b, ok := t.state.Boss(); ok {
			line += fmt.Sprintf("  BOSS %d", b.HP)
		}
	}
	for col := 0; col < t.cols; col++ {
		t.screen.SetContent(col, 0, ' ', nil, styleHUD)
	}
	t.text(0, 0, line, styleHUD)
}

func (t *Terminal) banner(row int, msg string) {
	col := (t.cols - len(msg)) / 2
	t.text(max(col, 0), row, msg, styleBanner)
}

func (t *Terminal) text(col, row int, msg string, st tcell.Style) {
	for i, r := range []rune(msg) {
		if col+i >= t.cols {
			return
		}
		t.screen.SetContent(col+i, row, r, nil, st)
	}
}

// cell maps a simulation point to a screen cell below the HUD row
func (t *Terminal) cell(x, y float64) (int, int, bool) {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y/CellHeight)) + 1
	return col, row, col >= 0 && col < t.cols && row >= 1 && row < t.rows
}

func (t *Terminal) put(x, y float64, r rune, st tcell.Style) {
	if col, row, ok := t.cell(x, y); ok {
		t.screen.SetContent(col, row, r, nil, st)
	}
}

// fill covers every cell a box touches, at least one
func (t *Terminal) fill(b sim.Rect, r rune, st tcell.Style) {
	c0, r0, _ := t.cell(b.X, b.Y)
	c1, r1, _ := t.cell(b.X+b.W-0.001, b.Y+b.H-0.001)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col >= 0 && col < t.cols && row >= 1 && row < t.rows {
				t.screen.SetContent(col, row, r, nil, st)
			}
		}
	}
}
