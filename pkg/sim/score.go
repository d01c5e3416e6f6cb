package sim

// ComboMultiplier is the current pass multiplier, 1 when combos are disabled
func (s *State) ComboMultiplier() int {
	if !s.Rules.Combo || s.Rules.ComboStep <= 0 {
		return 1
	}
	return min(s.Rules.ComboMax, 1+s.Combo/s.Rules.ComboStep)
}

// passCar scores an obstacle that fell below the player
func (s *State) passCar(t Traffic) {
	points := s.Rules.PassPoints
	if s.Rules.Combo {
		s.Combo++
		s.ComboTimer = s.Rules.ComboTimeout
		points *= s.ComboMultiplier()
	}
	if s.DoubleTimer > 0 {
		points *= 2
	}

	cx, _ := t.Center()
	s.AddScore(points, cx, s.Player.Y)

	s.passCount++
	if s.strayDue() {
		s.spawnHostile(KindMini)
	}
}

func (s *State) strayDue() bool {
	if !s.Rules.Shooting || s.Phase != PhaseCruising || s.Rules.StrayEvery <= 0 {
		return false
	}
	return s.passCount%s.Rules.StrayEvery == 0 && s.countHostiles() < s.Rules.MaxStrays
}

// AddScore credits points to the run and feeds the coin buffer, converting
// every full CoinExchange into CoinReward coins.
func (s *State) AddScore(points int, x, y float64) {
	if points <= 0 {
		return
	}
	s.Progress.Score += points
	s.Progress.CoinBuffer += points
	s.emit(EventScore, x, y, points)

	crossed := false
	for s.Progress.CoinBuffer >= s.Rules.CoinExchange {
		s.Progress.CoinBuffer -= s.Rules.CoinExchange
		s.Progress.AddCoins(s.Rules.CoinReward)
		s.emit(EventCoin, x, y, s.Rules.CoinReward)
		crossed = true
	}
	if crossed {
		s.emit(EventPersist, 0, 0, 0)
	}
}

// deductScore takes points off the run, never below zero
func (s *State) deductScore(points int, x, y float64) {
	s.Progress.Score -= points
	if s.Progress.Score < 0 {
		s.Progress.Score = 0
	}
	s.emit(EventPenalty, x, y, points)
}
