// Package sfx plays short effect tones for simulation events through the
// system speaker. A machine without an audio device gets a silent player.
package sfx

import (
	"log"
	"sync"
	"time"

	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player turns simulation events into sounds
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	volume  float64
	muted   bool
}

// NewPlayer opens the speaker. On failure the player stays usable but silent.
func NewPlayer(volume float64) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: %v", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// SetMuted silences or restores effects. Muting also cuts what is playing.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Handle plays the effect for each event, at most once per effect per batch.
// Pausing mutes the player until the run resumes or a new one starts.
func (p *Player) Handle(events []sim.Event) {
	seen := make(map[Effect]bool)
	for _, e := range events {
		switch e.Kind {
		case sim.EventPause:
			p.SetMuted(true)
			continue
		case sim.EventResume, sim.EventStart:
			p.SetMuted(false)
			continue
		}
		fx := EffectFor(e)
		if fx == EffectNone || seen[fx] {
			continue
		}
		seen[fx] = true
		p.Play(fx)
	}
}

// Play starts an effect on the shared mixer
func (p *Player) Play(fx Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.muted {
		return
	}
	s, err := Build(fx, sampleRate, p.volume)
	if err != nil {
		log.Printf("Failed to build sound %d: %v", fx, err)
		return
	}
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

// EffectFor maps a simulation event to its sound
func EffectFor(e sim.Event) Effect {
	switch e.Kind {
	case sim.EventMove:
		return EffectMove
	case sim.EventScore:
		return EffectScore
	case sim.EventCoin:
		return EffectCoin
	case sim.EventCrash, sim.EventHeartLost:
		return EffectCrash
	case sim.EventShield:
		return EffectShield
	case sim.EventShot:
		return EffectShot
	case sim.EventHostileDown:
		return EffectHit
	case sim.EventBossDown:
		return EffectBossDown
	case sim.EventPenalty:
		return EffectAlarm
	case sim.EventPhaseChange:
		if e.Value != int(sim.PhaseCruising) {
			return EffectAlarm
		}
	case sim.EventGameOver:
		return EffectGameOver
	}
	return EffectNone
}
