package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect is a short fixed sound
type Effect int

const (
	EffectNone Effect = iota
	EffectMove
	EffectScore
	EffectCoin
	EffectCrash
	EffectShield
	EffectShot
	EffectHit
	EffectBossDown
	EffectAlarm
	EffectGameOver
)

// note is one tone in an effect
type note struct {
	freq   float64
	length time.Duration
	square bool
}

var sheets = map[Effect][]note{
	EffectMove:     {{freq: 520, length: 30 * time.Millisecond}},
	EffectScore:    {{freq: 880, length: 40 * time.Millisecond}},
	EffectCoin:     {{freq: 988, length: 60 * time.Millisecond}, {freq: 1319, length: 120 * time.Millisecond}},
	EffectCrash:    {{freq: 110, length: 250 * time.Millisecond, square: true}},
	EffectShield:   {{freq: 660, length: 80 * time.Millisecond}, {freq: 440, length: 120 * time.Millisecond}},
	EffectShot:     {{freq: 1200, length: 35 * time.Millisecond, square: true}},
	EffectHit:      {{freq: 300, length: 60 * time.Millisecond, square: true}},
	EffectBossDown: {{freq: 523, length: 100 * time.Millisecond}, {freq: 659, length: 100 * time.Millisecond}, {freq: 784, length: 220 * time.Millisecond}},
	EffectAlarm:    {{freq: 440, length: 120 * time.Millisecond, square: true}, {freq: 330, length: 120 * time.Millisecond, square: true}},
	EffectGameOver: {{freq: 392, length: 150 * time.Millisecond}, {freq: 330, length: 150 * time.Millisecond}, {freq: 262, length: 300 * time.Millisecond}},
}

// Build returns a finite streamer for the effect at the given sample rate,
// or nil for EffectNone and unknown effects.
func Build(e Effect, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	sheet, ok := sheets[e]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(sheet))
	for _, n := range sheet {
		var (
			tone beep.Streamer
			err  error
		)
		if n.square {
			tone, err = generators.SquareTone(rate, n.freq)
		} else {
			tone, err = generators.SineTone(rate, n.freq)
		}
		if err != nil {
			return nil, err
		}
		length := rate.N(n.length)
		parts = append(parts, fade(beep.Take(length, tone), length, rate.N(5*time.Millisecond)))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// release ramps the last samples of a tone to zero to avoid clicks
type release struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func fade(s beep.Streamer, total, ramp int) beep.Streamer {
	return &release{streamer: s, total: total, ramp: ramp}
}

func (r *release) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if left := r.total - r.pos; r.ramp > 0 && left < r.ramp {
			g := float64(left) / float64(r.ramp)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		r.pos++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }
