package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionKind is a player intent decoded from keys, mouse or touch
type ActionKind int

const (
	ActionLeft ActionKind = iota
	ActionRight
	ActionPause
	ActionTap
)

// Action is one decoded input. X and Y are set for taps.
type Action struct {
	Kind ActionKind
	X, Y float64
}

// Input collects the actions of the current tick
type Input struct {
	touches []ebiten.TouchID
}

// Poll returns the actions started this tick, keys first
func (in *Input) Poll() []Action {
	var actions []Action

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		actions = append(actions, Action{Kind: ActionLeft})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		actions = append(actions, Action{Kind: ActionRight})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		actions = append(actions, Action{Kind: ActionPause})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		actions = append(actions, Action{Kind: ActionTap, X: float64(x), Y: float64(y)})
	}

	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		actions = append(actions, Action{Kind: ActionTap, X: float64(x), Y: float64(y)})
	}

	return actions
}
