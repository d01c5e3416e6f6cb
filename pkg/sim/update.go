package sim

import (
	"math"

	"github.com/golangdaddy/rush80/pkg/road"
)

// Update advances the simulation by dt seconds and returns the events
// emitted since the previous call. Outside of ModePlaying it only drains.
// A delta above Rules.MaxFrameDelta (a stalled tab or window) is replaced
// by Rules.FallbackDelta.
func (s *State) Update(dt float64) []Event {
	if s.Mode != ModePlaying || dt <= 0 || !s.Layout.Ready() {
		return s.Drain()
	}
	if dt > s.Rules.MaxFrameDelta {
		dt = s.Rules.FallbackDelta
	}

	s.Runtime += dt

	s.integrateSpeed(dt)
	s.easePlayer(dt)
	s.runSpawners(dt)
	s.RoadOffset = road.AdvanceMarkings(s.RoadOffset, s.scrollSpeed()*dt, s.Rules.MarkingTile)

	// Any of these may end the run; the rest of the frame is then skipped
	if !s.resolveTraffic(dt) {
		return s.Drain()
	}
	if !s.resolveHostiles(dt) {
		return s.Drain()
	}
	if !s.resolveBossShots(dt) {
		return s.Drain()
	}

	s.checkPhase()
	s.updateParticles(dt)
	s.tickCooldowns(dt)

	return s.Drain()
}

func (s *State) integrateSpeed(dt float64) {
	target := s.Rules.MaxSpeed
	if s.Phase != PhaseCruising {
		target *= s.Rules.CombatSpeedFactor
	}
	accel := s.Rules.Accel
	if s.Progress.Inventory.Turbo {
		accel = s.Rules.TurboAccel
	}
	s.Speed += (target - s.Speed) * accel * dt
}

func (s *State) easePlayer(dt float64) {
	targetX := s.Layout.LaneLeft(s.Player.Lane, s.Player.W)
	step := math.Min(1, s.Rules.LerpRate*dt)
	s.Player.X += (targetX - s.Player.X) * step
	s.Player.Tilt = (targetX - s.Player.X) * s.Rules.TiltFactor
}

// scrollSpeed is how fast the road moves under the player in px/s
func (s *State) scrollSpeed() float64 {
	return s.Rules.ScrollBase + s.Speed*s.Rules.ScrollPerSpeed
}

func (s *State) runSpawners(dt float64) {
	s.spawnTimer += dt
	if s.Phase == PhaseCruising && s.spawnTimer > s.Rules.SpawnInterval {
		s.spawnTimer = 0
		if s.Runtime > s.Rules.SpawnGrace {
			chance := s.Rules.SpawnChance
			if s.Progress.Inventory.Traffic {
				chance = s.Rules.ReducedSpawnChance
			}
			if s.rng.Float64() < chance {
				s.spawnTraffic()
			}
		}
	}

	if s.Phase == PhaseWave && s.waveSpawned < s.Rules.WaveKillQuota {
		s.waveTimer += dt
		if s.waveTimer >= s.Rules.WaveSpawnInterval && s.countHostiles() < s.Rules.WaveMaxHostiles {
			s.waveTimer = 0
			s.waveSpawned++
			kind := KindMini
			if s.Rules.MonsterEvery > 0 && s.waveSpawned%s.Rules.MonsterEvery == 0 {
				kind = KindMonster
			}
			s.spawnHostile(kind)
		}
	}
}

func (s *State) spawnTraffic() {
	lane := s.rng.Intn(s.Layout.LaneCount)
	x := s.Layout.LaneLeft(lane, s.Player.W)

	// Do not stack a new car on one that has not entered the screen yet
	for _, t := range s.Traffic {
		if math.Abs(t.X-x) < 5 && t.Y < s.Rules.SpawnY+30 {
			return
		}
	}

	s.Traffic = append(s.Traffic, Traffic{
		Rect: Rect{X: x, Y: s.Rules.SpawnY, W: s.Player.W, H: s.Player.H},
	})
}

// resolveTraffic moves obstacles, scores passes and crashes.
// It returns false if the run ended during the pass.
func (s *State) resolveTraffic(dt float64) bool {
	move := s.scrollSpeed() * s.Rules.TrafficSpeed * dt
	hitbox := s.Player.Rect()
	rowBottom := s.Player.Y + s.Player.H

	kept := s.Traffic[:0]
	for _, t := range s.Traffic {
		t.Y += move

		if !t.Passed && t.Y > rowBottom {
			t.Passed = true
			s.passCar(t)
		}
		if t.Y > s.Layout.Height {
			continue
		}
		if hitbox.Overlaps(t.Rect, s.Rules.CollisionPad) {
			s.crash(t.Rect)
			if s.Mode != ModePlaying {
				return false
			}
			continue
		}
		kept = append(kept, t)
	}
	s.Traffic = kept
	return true
}

// resolveHostiles moves hostiles and player bullets, applies hits, contact
// crashes and pass penalties. It returns false if the run ended.
func (s *State) resolveHostiles(dt float64) bool {
	for i := range s.Hostiles {
		s.moveHostile(&s.Hostiles[i], dt)
	}

	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.Bottom() < 0 {
			continue
		}
		if s.hitHostile(b.Rect) {
			continue
		}
		bullets = append(bullets, b)
	}
	s.Bullets = bullets

	hitbox := s.Player.Rect()
	rowBottom := s.Player.Y + s.Player.H

	kept := s.Hostiles[:0]
	for _, h := range s.Hostiles {
		if h.HP <= 0 {
			continue
		}
		if h.Kind == KindBoss {
			kept = append(kept, h)
			continue
		}
		if hitbox.Overlaps(h.Rect, s.Rules.CollisionPad) {
			s.crash(h.Rect)
			if s.Mode != ModePlaying {
				return false
			}
			continue
		}
		if h.Y > rowBottom {
			s.hostileEscaped(h)
			if s.Mode != ModePlaying {
				return false
			}
			continue
		}
		kept = append(kept, h)
	}
	s.Hostiles = kept
	return true
}

func (s *State) moveHostile(h *Hostile, dt float64) {
	if h.Kind != KindBoss {
		h.Y += h.Speed * dt
		return
	}

	h.X += h.Dir * h.Speed * dt
	if h.X <= 0 {
		h.X = 0
		h.Dir = 1
	} else if h.X+h.W >= s.Layout.Width {
		h.X = s.Layout.Width - h.W
		h.Dir = -1
	}

	s.bossShootTimer += dt
	if s.bossShootTimer >= s.Rules.BossShootInterval {
		s.bossShootTimer = 0
		s.BossShots = append(s.BossShots, Projectile{
			Rect: Rect{X: h.X + h.W/2 - 5, Y: h.Y + h.H, W: 10, H: 16},
			VY:   s.Rules.BossBulletSpeed,
		})
	}
}

// hitHostile applies a bullet to the first live hostile it overlaps
func (s *State) hitHostile(b Rect) bool {
	for i := range s.Hostiles {
		h := &s.Hostiles[i]
		if h.HP <= 0 || !b.Overlaps(h.Rect, 0) {
			continue
		}
		h.HP--
		if h.HP <= 0 {
			s.hostileDestroyed(*h)
		}
		return true
	}
	return false
}

func (s *State) resolveBossShots(dt float64) bool {
	hitbox := s.Player.Rect()

	kept := s.BossShots[:0]
	for _, b := range s.BossShots {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.Y > s.Layout.Height {
			continue
		}
		if hitbox.Overlaps(b.Rect, 0) {
			s.bulletHit(b.Rect)
			if s.Mode != ModePlaying {
				return false
			}
			continue
		}
		kept = append(kept, b)
	}
	s.BossShots = kept
	return true
}

func (s *State) updateParticles(dt float64) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= s.Rules.ParticleDecay * dt
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	s.Particles = kept
}

func (s *State) tickCooldowns(dt float64) {
	if s.DoubleTimer > 0 {
		s.DoubleTimer = math.Max(0, s.DoubleTimer-dt)
	}

	if s.Combo > 0 {
		s.ComboTimer -= dt
		if s.ComboTimer <= 0 {
			s.Combo = 0
			s.ComboTimer = 0
		}
	}

	if s.Shake > 0 {
		s.Shake *= math.Pow(0.9, dt*60)
		if s.Shake < 0.5 {
			s.Shake = 0
		}
	}

	if s.Rules.AutoFire && s.Rules.Shooting && s.Phase != PhaseCruising {
		s.autoFireTimer += dt
		if s.autoFireTimer >= s.Rules.AutoFireInterval {
			s.autoFireTimer = 0
			if len(s.Hostiles) > 0 {
				s.fire()
			}
		}
	} else {
		s.autoFireTimer = 0
	}
}

// explode bursts particles from a point
func (s *State) explode(x, y float64) {
	spread := s.Rules.ParticleSpread * 60
	for i := 0; i < s.Rules.ParticleCount; i++ {
		s.Particles = append(s.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   (s.rng.Float64() - 0.5) * spread,
			VY:   (s.rng.Float64() - 0.5) * spread,
			Life: 1,
			Size: s.rng.Float64()*6 + 2,
		})
	}
}
