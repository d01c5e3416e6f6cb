package sim

import "github.com/golangdaddy/rush80/pkg/config"

// checkPhase moves between cruising, waves and the boss fight
func (s *State) checkPhase() {
	switch s.Phase {
	case PhaseCruising:
		if s.Progress.Score >= s.Progress.NextCheckpoint {
			s.reachCheckpoint()
		}
	case PhaseWave:
		// A wave sends WaveKillQuota hostiles and is over once they are
		// all shot down, or all spawned and gone
		spent := s.waveSpawned >= s.Rules.WaveKillQuota && s.countHostiles() == 0
		if s.waveKills >= s.Rules.WaveKillQuota || spent {
			s.endCombat()
		}
	case PhaseBoss:
		if _, ok := s.Boss(); !ok {
			s.endBoss()
		}
	}
}

func (s *State) reachCheckpoint() {
	s.Progress.Ring++
	s.Progress.UpdateBest(s.Progress.Score)
	if s.Rules.ResetScoreOnCheckpoint {
		s.Progress.Score = 0
	} else {
		s.Progress.NextCheckpoint += s.Rules.CheckpointScore
	}
	s.emit(EventCheckpoint, 0, 0, s.Progress.Ring)

	switch {
	case s.Rules.Boss && s.Progress.Ring%s.Rules.BossEvery == 0:
		s.startBoss()
	case s.Rules.Waves:
		s.startWave()
	}

	s.emit(EventPersist, 0, 0, 0)
}

func (s *State) startWave() {
	s.Phase = PhaseWave
	s.waveKills = 0
	s.waveSpawned = 0
	s.waveTimer = 0
	s.emit(EventPhaseChange, 0, 0, int(PhaseWave))
}

func (s *State) startBoss() {
	s.Phase = PhaseBoss
	s.Traffic = s.Traffic[:0]
	s.Hostiles = s.Hostiles[:0]
	s.BossShots = s.BossShots[:0]
	s.bossShootTimer = 0

	w, h := s.Rules.BossWidth, s.Rules.BossHeight
	s.Hostiles = append(s.Hostiles, Hostile{
		Rect:  Rect{X: (s.Layout.Width - w) / 2, Y: s.Rules.BossRow, W: w, H: h},
		Kind:  KindBoss,
		HP:    s.Rules.BossHP,
		MaxHP: s.Rules.BossHP,
		Dir:   1,
		Speed: s.Rules.BossSpeed,
	})
	s.emit(EventPhaseChange, 0, 0, int(PhaseBoss))
}

// endCombat returns to cruising and clears what is left of the fight
func (s *State) endCombat() {
	s.Phase = PhaseCruising
	s.Hostiles = s.Hostiles[:0]
	s.BossShots = s.BossShots[:0]
	s.spawnTimer = 0
	s.waveTimer = 0
	s.emit(EventPhaseChange, 0, 0, int(PhaseCruising))
}

func (s *State) endBoss() {
	s.Progress.BossKills++
	bonus := s.Rules.BossBonus * s.Progress.BossKills

	s.endCombat()
	s.Speed = s.Rules.MaxSpeed
	s.AddScore(bonus, s.Layout.Width/2, s.Rules.BossRow)
	s.emit(EventBossDown, s.Layout.Width/2, s.Rules.BossRow, bonus)
	s.emit(EventPersist, 0, 0, 0)
}

// spawnHostile drops a mini or monster into a random lane above the screen
func (s *State) spawnHostile(kind HostileKind) {
	w, h := s.Player.W, s.Player.H
	hp, speed := s.Rules.MiniHP, s.Rules.MiniSpeed
	if kind == KindMonster {
		w, h = w*1.4, h*1.2
		hp, speed = s.Rules.MonsterHP, s.Rules.MonsterSpeed
	}

	lane := s.rng.Intn(s.Layout.LaneCount)
	s.Hostiles = append(s.Hostiles, Hostile{
		Rect:  Rect{X: s.Layout.LaneCenterX(lane) - w/2, Y: -h, W: w, H: h},
		Kind:  kind,
		HP:    hp,
		MaxHP: hp,
		Speed: speed,
	})
}

// countHostiles counts the hostiles other than the boss
func (s *State) countHostiles() int {
	n := 0
	for _, h := range s.Hostiles {
		if h.Kind != KindBoss {
			n++
		}
	}
	return n
}

func (s *State) hostileDestroyed(h Hostile) {
	cx, cy := h.Center()
	s.explode(cx, cy)
	s.emit(EventHostileDown, cx, cy, int(h.Kind))

	switch h.Kind {
	case KindMini:
		s.AddScore(s.Rules.MiniBonus, cx, cy)
	case KindMonster:
		s.AddScore(s.Rules.MonsterBonus, cx, cy)
	}
	if h.Kind != KindBoss && s.Phase == PhaseWave {
		s.waveKills++
	}
}

// hostileEscaped applies the pass penalty for a hostile that got by the player
func (s *State) hostileEscaped(h Hostile) {
	cx, _ := h.Center()
	y := s.Player.Y

	switch s.Rules.PassPenalty {
	case config.PenaltyPoints:
		points := s.Rules.MiniPenalty
		if h.Kind == KindMonster {
			points = s.Rules.MonsterPenalty
		}
		s.deductScore(points, cx, y)
	case config.PenaltyHeart:
		if s.Rules.Hearts {
			s.dropHeart(cx, y)
		}
	}
}

// Fire launches a bullet when (x, y) lands on a live hostile.
// Each shot costs Rules.ShotCost coins; it returns false when nothing was fired.
func (s *State) Fire(x, y float64) bool {
	if s.Mode != ModePlaying || !s.Rules.Shooting {
		return false
	}
	for _, h := range s.Hostiles {
		if h.HP > 0 && h.Contains(x, y) {
			return s.fire()
		}
	}
	return false
}

// Target returns the hostile closest to the player, if any
func (s *State) Target() (Hostile, bool) {
	var best Hostile
	found := false
	for _, h := range s.Hostiles {
		if h.HP <= 0 {
			continue
		}
		if !found || h.Bottom() > best.Bottom() {
			best = h
			found = true
		}
	}
	return best, found
}

func (s *State) fire() bool {
	if !s.Progress.SpendCoins(s.Rules.ShotCost) {
		return false
	}
	x := s.Player.X + s.Player.W/2 - 4
	s.Bullets = append(s.Bullets, Projectile{
		Rect: Rect{X: x, Y: s.Player.Y - 14, W: 8, H: 14},
		VY:   -s.Rules.BulletSpeed,
	})
	s.emit(EventShot, x+4, s.Player.Y, s.Rules.ShotCost)
	return true
}
