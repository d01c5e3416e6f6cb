package sim

// crash handles the player touching an obstacle or hostile.
// An owned shield absorbs the hit and breaks; otherwise a heart is lost.
func (s *State) crash(obstacle Rect) {
	if s.Progress.Inventory.Shield {
		s.Progress.Inventory.Shield = false
		s.Shake = s.Rules.ShieldShake
		cx, cy := obstacle.Center()
		s.explode(cx, cy)
		s.emit(EventShield, cx, cy, 0)
		s.emit(EventPersist, 0, 0, 0)
		return
	}

	s.Combo = 0
	s.ComboTimer = 0
	s.Shake = s.Rules.CrashShake

	cx, cy := s.Player.Rect().Center()
	s.explode(cx, cy)
	s.emit(EventCrash, cx, cy, 0)

	if !s.Rules.Hearts {
		s.Progress.Hearts = 0
		s.finishRun()
		return
	}
	s.dropHeart(cx, cy)
}

// bulletHit takes a heart for a boss bullet. Shields do not stop bullets
// and the combo survives.
func (s *State) bulletHit(b Rect) {
	s.Shake = s.Rules.BulletShake
	cx, cy := b.Center()
	s.emit(EventCrash, cx, cy, 0)

	if !s.Rules.Hearts {
		s.Progress.Hearts = 0
		s.finishRun()
		return
	}
	s.dropHeart(cx, cy)
}

// dropHeart removes one heart and ends the run at zero
func (s *State) dropHeart(x, y float64) {
	s.Progress.Hearts--
	if s.Progress.Hearts < 0 {
		s.Progress.Hearts = 0
	}
	s.emit(EventHeartLost, x, y, s.Progress.Hearts)
	s.emit(EventPersist, 0, 0, 0)

	if s.Progress.Hearts == 0 {
		s.finishRun()
	}
}

// finishRun ends the run: best score, coin penalty and a fresh run state
// for next time. Owned upgrades and the remaining coins survive.
func (s *State) finishRun() {
	score := s.Progress.Score
	s.LastScore = score
	s.NewBest = s.Progress.UpdateBest(score)

	s.Progress.Coins -= s.Rules.GameOverCoinPenalty
	if s.Progress.Coins < 0 {
		s.Progress.Coins = 0
	}
	s.Progress.Score = 0
	s.Progress.Hearts = 0
	s.Progress.NextCheckpoint = s.Rules.CheckpointScore

	s.Combo = 0
	s.ComboTimer = 0
	s.DoubleTimer = 0
	s.Phase = PhaseCruising
	s.clearEntities()
	s.Mode = ModeGameOver

	s.emit(EventGameOver, 0, 0, score)
	s.emit(EventPersist, 0, 0, 0)
}
