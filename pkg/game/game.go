package game

import (
	"log"
	"time"

	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/render"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/golangdaddy/rush80/pkg/storage"
	"github.com/golangdaddy/rush80/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Sounds plays effects for simulation events
type Sounds interface {
	Handle(events []sim.Event)
}

type silence struct{}

func (silence) Handle([]sim.Event) {}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	settings config.Settings
	store    storage.Store
	state    *sim.State
	renderer *render.Renderer
	sounds   Sounds

	currentScreen Screen
	gameplay      *GameplayScreen

	lastTick time.Time
	focused  bool
	width    int
	height   int
}

// NewGame creates a new game instance around persisted progress
func NewGame(settings config.Settings, store storage.Store, progress *models.Progress, sounds Sounds) *Game {
	if sounds == nil {
		sounds = silence{}
	}
	g := &Game{
		settings: settings,
		store:    store,
		state:    sim.New(settings.Rules, progress, settings.Seed),
		renderer: render.New(settings.Seed),
		sounds:   sounds,
		focused:  true,
	}
	g.gameplay = NewGameplayScreen(g.state, g.renderer)
	g.showTitle()
	return g
}

// State exposes the simulation, mainly for tests and tools
func (g *Game) State() *sim.State {
	return g.state
}

// Update handles game logic updates
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.state.Suspend()
		g.handle(g.state.Drain())
		log.Printf("Window closed, progress saved")
		return ebiten.Termination
	}

	focused := ebiten.IsFocused()
	if g.focused && !focused {
		g.state.Suspend()
	}
	g.focused = focused

	if g.currentScreen != nil {
		if err := g.currentScreen.Update(); err != nil {
			return err
		}
	}

	now := time.Now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	g.step(dt)
	return nil
}

// step advances the simulation and reacts to what it reports
func (g *Game) step(dt float64) {
	g.handle(g.state.Update(dt))
}

func (g *Game) handle(events []sim.Event) {
	if len(events) == 0 {
		return
	}
	g.sounds.Handle(events)

	if sim.Has(events, sim.EventPersist) {
		g.save()
	}
	if sim.Has(events, sim.EventGameOver) {
		log.Printf("Game over: score %d, best %d", g.state.LastScore, g.state.Progress.Best)
		g.currentScreen = ui.NewGameOverScreen(g.state.LastScore, g.state.NewBest, g.state.Progress, g.restart)
	}
	if sim.Has(events, sim.EventBossDown) {
		log.Printf("Boss defeated: %d total", g.state.Progress.BossKills)
	}
}

func (g *Game) save() {
	if err := g.state.Progress.Save(g.store); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout reports the window size in logical pixels, which is also the
// simulation's coordinate space. On high-DPI displays ebiten upscales the
// logical image, so it is not drawn at native resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.state.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.state.Progress, g.settings.Rules.Name, g.startRun, g.showShop)
}

func (g *Game) showShop() {
	g.currentScreen = ui.NewShopScreen(g.state.Progress, g.settings.Rules.Prices, g.buy, g.showTitle)
}

func (g *Game) buy(name string) error {
	if err := g.state.Buy(name); err != nil {
		return err
	}
	title := name
	if u, ok := models.FindUpgrade(name); ok {
		title = u.Title
	}
	log.Printf("Bought %s, %d coins left", title, g.state.Progress.Coins)
	return nil
}

func (g *Game) startRun() {
	if err := g.state.Start(); err != nil {
		log.Printf("Failed to start run: %v", err)
		return
	}
	g.lastTick = time.Time{}
	g.currentScreen = g.gameplay
	log.Printf("Run started: score %d, hearts %d, ring %d", g.state.Progress.Score, g.state.Progress.Hearts, g.state.Progress.Ring)
}

func (g *Game) restart() {
	if err := g.state.Restart(); err != nil {
		log.Printf("Failed to restart: %v", err)
	}
	g.showTitle()
}
