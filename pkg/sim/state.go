// Package sim is the lane-dodge engine: entity collections, the frame update
// loop, collision resolution and the mode/combat state machine.
//
// A State is owned by a single goroutine. Renderers may read it between
// updates but never write to it; everything the outside world needs to
// react to is reported as Events.
package sim

import (
	"errors"
	"math/rand"

	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/road"
)

var (
	ErrNotInMenu         = errors.New("only available from the menu")
	ErrNotOver           = errors.New("run is not over")
	ErrUnknownItem       = errors.New("unknown upgrade")
	ErrAlreadyOwned      = errors.New("upgrade already owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// Mode is the coarse game mode
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// Phase is the combat sub-state while playing
type Phase int

const (
	PhaseCruising Phase = iota
	PhaseWave
	PhaseBoss
)

func (p Phase) String() string {
	switch p {
	case PhaseCruising:
		return "cruising"
	case PhaseWave:
		return "wave"
	case PhaseBoss:
		return "boss"
	}
	return "unknown"
}

// State is the whole simulation
type State struct {
	Rules    config.Rules
	Layout   *road.Layout
	Progress *models.Progress

	Mode  Mode
	Phase Phase

	Speed       float64
	Runtime     float64
	RoadOffset  float64
	Shake       float64
	DoubleTimer float64
	Combo       int
	ComboTimer  float64

	// Result of the last finished run
	LastScore int
	NewBest   bool

	Player    Player
	Traffic   []Traffic
	Hostiles  []Hostile
	Bullets   []Projectile
	BossShots []Projectile
	Particles []Particle

	spawnTimer     float64
	waveTimer      float64
	autoFireTimer  float64
	bossShootTimer float64
	passCount      int
	waveKills      int
	waveSpawned    int

	rng    *rand.Rand
	events []Event
}

// New creates a simulation in menu mode.
// The seed drives every random decision, so equal seeds replay equal runs.
func New(rules config.Rules, progress *models.Progress, seed int64) *State {
	if progress == nil {
		progress = models.NewProgress(rules.StartHearts, rules.CheckpointScore)
	}
	s := &State{
		Rules:    rules,
		Layout:   road.NewLayout(rules.LaneCount, rules.PlayerWidth, rules.PlayerAspect, rules.PlayerRow),
		Progress: progress,
		Mode:     ModeMenu,
		Phase:    PhaseCruising,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.Player.Lane = s.Layout.ClampLane(rules.StartLane)
	return s
}

// Resize recomputes the layout for a new viewport. Outside of a run the
// player snaps to its lane; during a run it eases there on its own.
func (s *State) Resize(width, height float64) {
	s.Layout.Resize(width, height)
	s.Player.W = s.Layout.CarWidth
	s.Player.H = s.Layout.CarHeight
	s.Player.Y = s.Layout.CarY
	if s.Mode != ModePlaying {
		s.snapPlayer()
	}
}

func (s *State) snapPlayer() {
	s.Player.X = s.Layout.LaneLeft(s.Player.Lane, s.Player.W)
	s.Player.Tilt = 0
}

// Start begins a run from the menu, resuming persisted score and hearts
func (s *State) Start() error {
	if s.Mode != ModeMenu {
		return ErrNotInMenu
	}

	s.Mode = ModePlaying
	s.Phase = PhaseCruising
	s.Runtime = 0
	s.Shake = 0
	s.Combo = 0
	s.ComboTimer = 0
	s.spawnTimer = 0
	s.waveTimer = 0
	s.autoFireTimer = 0
	s.bossShootTimer = 0
	s.passCount = 0
	s.waveKills = 0
	s.waveSpawned = 0

	inv := s.Progress.Inventory
	s.Speed = s.Rules.StartSpeed
	if inv.Turbo {
		s.Speed = s.Rules.TurboStartSpeed
	}
	s.DoubleTimer = 0
	if s.Rules.DoubleBuff && inv.Double {
		s.DoubleTimer = s.Rules.DoubleDuration
	}
	if !s.Rules.Hearts || s.Progress.Hearts <= 0 {
		s.Progress.Hearts = s.Rules.StartHearts
	}
	if s.Progress.NextCheckpoint <= 0 {
		s.Progress.NextCheckpoint = s.Rules.CheckpointScore
	}

	s.Player.Lane = s.Layout.ClampLane(s.Rules.StartLane)
	s.snapPlayer()
	s.clearEntities()

	s.emit(EventStart, 0, 0, s.Progress.Score)
	s.emit(EventPersist, 0, 0, 0)
	return nil
}

// TogglePause switches between playing and paused, returns false when
// neither applies. Pausing persists progress.
func (s *State) TogglePause() bool {
	switch s.Mode {
	case ModePlaying:
		s.Mode = ModePaused
		s.emit(EventPause, 0, 0, 0)
		s.emit(EventPersist, 0, 0, 0)
		return true
	case ModePaused:
		s.Mode = ModePlaying
		s.emit(EventResume, 0, 0, 0)
		return true
	}
	return false
}

// Suspend is called when the host hides or loses focus
func (s *State) Suspend() {
	if s.Mode == ModePlaying {
		s.Mode = ModePaused
		s.emit(EventPause, 0, 0, 0)
	}
	s.emit(EventPersist, 0, 0, 0)
}

// Restart returns from the game-over screen to the menu
func (s *State) Restart() error {
	if s.Mode != ModeGameOver {
		return ErrNotOver
	}
	s.Mode = ModeMenu
	s.Phase = PhaseCruising
	s.Player.Lane = s.Layout.ClampLane(s.Rules.StartLane)
	s.snapPlayer()
	return nil
}

// Move shifts the player by dir lanes. Requests past the road edge are clamped.
func (s *State) Move(dir int) {
	if s.Mode != ModePlaying {
		return
	}
	s.Player.Lane = s.Layout.ClampLane(s.Player.Lane + dir)
	s.emit(EventMove, 0, 0, s.Player.Lane)
}

// Buy unlocks an upgrade from the shop
func (s *State) Buy(name string) error {
	if s.Mode != ModeMenu {
		return ErrNotInMenu
	}
	price, ok := s.Rules.Prices[name]
	if !ok {
		return ErrUnknownItem
	}
	if s.Progress.Inventory.Owns(name) {
		return ErrAlreadyOwned
	}
	if !s.Progress.SpendCoins(price) {
		return ErrInsufficientCoins
	}
	if !s.Progress.Inventory.Grant(name) {
		s.Progress.AddCoins(price)
		return ErrUnknownItem
	}
	s.emit(EventPurchase, 0, 0, price)
	s.emit(EventPersist, 0, 0, 0)
	return nil
}

// Boss returns the active boss, if any
func (s *State) Boss() (Hostile, bool) {
	for _, h := range s.Hostiles {
		if h.Kind == KindBoss {
			return h, true
		}
	}
	return Hostile{}, false
}

// WaveKills returns the kills counted toward the current wave's quota
func (s *State) WaveKills() int {
	return s.waveKills
}

func (s *State) clearEntities() {
	s.Traffic = s.Traffic[:0]
	s.Hostiles = s.Hostiles[:0]
	s.Bullets = s.Bullets[:0]
	s.BossShots = s.BossShots[:0]
	s.Particles = s.Particles[:0]
}
