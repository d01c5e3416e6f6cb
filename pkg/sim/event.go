package sim

// EventKind identifies something the simulation wants presented or persisted
type EventKind int

const (
	EventMove EventKind = iota
	EventStart
	EventPause
	EventResume
	EventScore
	EventCoin
	EventCrash
	EventShield
	EventHeartLost
	EventShot
	EventHostileDown
	EventBossDown
	EventCheckpoint
	EventPhaseChange
	EventPenalty
	EventPurchase
	EventGameOver
	EventPersist
)

var eventNames = map[EventKind]string{
	EventMove:        "move",
	EventStart:       "start",
	EventPause:       "pause",
	EventResume:      "resume",
	EventScore:       "score",
	EventCoin:        "coin",
	EventCrash:       "crash",
	EventShield:      "shield",
	EventHeartLost:   "heart_lost",
	EventShot:        "shot",
	EventHostileDown: "hostile_down",
	EventBossDown:    "boss_down",
	EventCheckpoint:  "checkpoint",
	EventPhaseChange: "phase_change",
	EventPenalty:     "penalty",
	EventPurchase:    "purchase",
	EventGameOver:    "game_over",
	EventPersist:     "persist",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted by the simulation and consumed by presentation layers.
// X and Y locate the effect when it has a position, Value carries the
// amount (points, coins, ring, hearts left) where one applies.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Value int
}

func (s *State) emit(kind EventKind, x, y float64, value int) {
	s.events = append(s.events, Event{Kind: kind, X: x, Y: y, Value: value})
}

// Drain returns the events emitted since the last drain
func (s *State) Drain() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// Has reports whether events contains at least one of kind
func Has(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
