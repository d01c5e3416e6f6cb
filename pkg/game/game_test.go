package game

import (
	"strings"
	"testing"

	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/golangdaddy/rush80/pkg/storage"
	"github.com/golangdaddy/rush80/pkg/ui"
)

type recorder struct {
	events []sim.Event
}

func (r *recorder) Handle(events []sim.Event) {
	r.events = append(r.events, events...)
}

func newTestGame(t *testing.T, progress *models.Progress) (*Game, *storage.MemoryStore, *recorder) {
	t.Helper()
	store := storage.NewMemoryStore()
	sounds := &recorder{}
	g := NewGame(config.Settings{Rules: config.Default(), Seed: 5}, store, progress, sounds)
	g.Layout(400, 800)
	return g, store, sounds
}

func TestStartRunSwitchesToGameplay(t *testing.T) {
	g, store, _ := newTestGame(t, nil)
	if _, ok := g.currentScreen.(*ui.TitleScreen); !ok {
		t.Fatalf("initial screen = %T, want title", g.currentScreen)
	}

	g.startRun()
	if g.currentScreen != g.gameplay {
		t.Fatalf("screen = %T, want gameplay", g.currentScreen)
	}
	g.step(0.016)
	if store.Flushes() == 0 {
		t.Fatalf("run start did not persist")
	}
}

func TestCrashShowsGameOverAndSaves(t *testing.T) {
	p := models.NewProgress(1, 10000)
	p.Score = 640
	g, store, sounds := newTestGame(t, p)
	g.startRun()

	s := g.State()
	s.Traffic = append(s.Traffic, sim.Traffic{Rect: s.Player.Rect()})
	g.step(0.016)

	if _, ok := g.currentScreen.(*ui.GameOverScreen); !ok {
		t.Fatalf("screen = %T, want game over", g.currentScreen)
	}
	if v, _ := store.Get(models.KeyBest); v != "640" {
		t.Fatalf("stored best = %q, want 640", v)
	}
	if !sim.Has(sounds.events, sim.EventCrash) {
		t.Fatalf("crash not forwarded to sounds")
	}

	g.restart()
	if _, ok := g.currentScreen.(*ui.TitleScreen); !ok {
		t.Fatalf("screen after restart = %T, want title", g.currentScreen)
	}
	if s.Mode != sim.ModeMenu {
		t.Fatalf("mode = %v, want menu", s.Mode)
	}
}

func TestBuyPersistsInventory(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Coins = 60
	g, store, _ := newTestGame(t, p)

	g.showShop()
	if err := g.buy(models.UpgradeShield); err != nil {
		t.Fatalf("buy: %v", err)
	}
	g.step(0)

	inv, ok := store.Get(models.KeyInventory)
	if !ok || !strings.Contains(inv, `"shield":true`) {
		t.Fatalf("stored inventory = %q", inv)
	}
	if v, _ := store.Get(models.KeyCoins); v != "10" {
		t.Fatalf("stored coins = %q, want 10", v)
	}
}

func TestTapSteersByHalf(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.startRun()
	gs := g.gameplay
	lane := g.State().Player.Lane

	gs.Apply(Action{Kind: ActionTap, X: 50, Y: 400})
	if g.State().Player.Lane != lane-1 {
		t.Fatalf("left tap: lane = %d, want %d", g.State().Player.Lane, lane-1)
	}
	gs.Apply(Action{Kind: ActionTap, X: 350, Y: 400})
	gs.Apply(Action{Kind: ActionRight})
	if g.State().Player.Lane != lane+1 {
		t.Fatalf("lane = %d, want %d", g.State().Player.Lane, lane+1)
	}
}

func TestTapOnHostileFires(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Coins = 2
	g, _, _ := newTestGame(t, p)
	g.startRun()
	s := g.State()
	lane := s.Player.Lane

	s.Hostiles = append(s.Hostiles, sim.Hostile{
		Rect: sim.Rect{X: 10, Y: 100, W: 40, H: 40},
		Kind: sim.KindMini,
		HP:   3,
	})
	g.gameplay.Tap(30, 120)

	if p.Coins != 1 || len(s.Bullets) != 1 {
		t.Fatalf("coins=%d bullets=%d, want 1 and 1", p.Coins, len(s.Bullets))
	}
	if s.Player.Lane != lane {
		t.Fatalf("tap on hostile also steered")
	}
}

func TestPauseAction(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.startRun()
	g.gameplay.Apply(Action{Kind: ActionPause})
	if g.State().Mode != sim.ModePaused {
		t.Fatalf("mode = %v, want paused", g.State().Mode)
	}
	g.gameplay.Tap(10, 10)
	g.gameplay.Apply(Action{Kind: ActionPause})
	if g.State().Mode != sim.ModePlaying {
		t.Fatalf("mode = %v, want playing", g.State().Mode)
	}
}

func TestLayoutIsLogicalPixels(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	w, h := g.Layout(360, 640)
	if w != 360 || h != 640 {
		t.Fatalf("Layout = %dx%d, want 360x640", w, h)
	}
	if l := g.State().Layout; l.Width != 360 || l.Height != 640 {
		t.Fatalf("sim layout = %vx%v, want 360x640", l.Width, l.Height)
	}
}

func TestPauseReachesSounds(t *testing.T) {
	g, _, sounds := newTestGame(t, nil)
	g.startRun()
	g.gameplay.Apply(Action{Kind: ActionPause})
	g.step(0.016)
	if !sim.Has(sounds.events, sim.EventPause) {
		t.Fatalf("pause not forwarded to sounds")
	}
	g.gameplay.Apply(Action{Kind: ActionPause})
	g.step(0.016)
	if !sim.Has(sounds.events, sim.EventResume) {
		t.Fatalf("resume not forwarded to sounds")
	}
}
