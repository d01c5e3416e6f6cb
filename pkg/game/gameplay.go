package game

import (
	"github.com/golangdaddy/rush80/pkg/render"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameplayScreen is the driving view: it feeds input to the simulation and
// draws it. The frame update itself is run by Game so it keeps ticking
// behind other screens.
type GameplayScreen struct {
	state    *sim.State
	renderer *render.Renderer
	input    *Input
}

// NewGameplayScreen creates the driving screen for a simulation
func NewGameplayScreen(state *sim.State, renderer *render.Renderer) *GameplayScreen {
	return &GameplayScreen{
		state:    state,
		renderer: renderer,
		input:    &Input{},
	}
}

// Update handles gameplay input
func (gs *GameplayScreen) Update() error {
	for _, a := range gs.input.Poll() {
		gs.Apply(a)
	}
	return nil
}

// Apply performs one input action on the simulation
func (gs *GameplayScreen) Apply(a Action) {
	switch a.Kind {
	case ActionLeft:
		gs.state.Move(-1)
	case ActionRight:
		gs.state.Move(1)
	case ActionPause:
		gs.state.TogglePause()
	case ActionTap:
		gs.Tap(a.X, a.Y)
	}
}

// Tap fires at a hostile under the point when possible, otherwise steers
// toward the tapped half of the road.
func (gs *GameplayScreen) Tap(x, y float64) {
	if gs.state.Mode != sim.ModePlaying {
		return
	}
	if gs.state.Fire(x, y) {
		return
	}
	if x < gs.state.Layout.Width/2 {
		gs.state.Move(-1)
	} else {
		gs.state.Move(1)
	}
}

// Draw renders the run
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.state)
}
