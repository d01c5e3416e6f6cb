package sim

// Rect is an axis-aligned box in viewport pixels, Y growing downward
type Rect struct {
	X, Y, W, H float64
}

// Overlaps tests two boxes for intersection, shrinking the other box by pad
// on every side so grazing contact does not count.
func (r Rect) Overlaps(o Rect, pad float64) bool {
	return r.X < o.X+o.W-pad &&
		r.X+r.W > o.X+pad &&
		r.Y < o.Y+o.H-pad &&
		r.Y+r.H > o.Y+pad
}

// Contains reports whether a point lies strictly inside the box
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Center returns the centre point of the box
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bottom returns the Y of the lower edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Player is the car under control. Lane is the logical position,
// X eases toward that lane every frame.
type Player struct {
	Lane int
	X, Y float64
	W, H float64
	Tilt float64
}

// Rect returns the player's hit-box
func (p Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Traffic is an obstacle car travelling down the road
type Traffic struct {
	Rect
	Passed bool // scored once when it falls below the player
}

// HostileKind distinguishes the hostile actors
type HostileKind int

const (
	KindMini HostileKind = iota
	KindMonster
	KindBoss
)

func (k HostileKind) String() string {
	switch k {
	case KindMini:
		return "mini"
	case KindMonster:
		return "monster"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// Hostile is a mini-enemy, a monster or the boss
type Hostile struct {
	Rect
	Kind  HostileKind
	HP    int
	MaxHP int
	Dir   float64 // boss strafing direction, +1 or -1
	Speed float64
}

// Projectile is a player or boss bullet
type Projectile struct {
	Rect
	VX, VY float64
}

// Particle is a short-lived spark. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
}
