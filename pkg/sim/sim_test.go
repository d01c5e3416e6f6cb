package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/models"
)

const frame = 0.016

// newRun returns a state already playing on a 400x800 viewport.
// With four lanes the player (44x66) sits in lane 1 at X 128, Y 600.
func newRun(t *testing.T, rules config.Rules, progress *models.Progress) *State {
	t.Helper()
	s := New(rules, progress, 7)
	s.Resize(400, 800)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Drain()
	return s
}

func laneBox(s *State, lane int, y float64) Rect {
	return Rect{X: s.Layout.LaneLeft(lane, s.Player.W), Y: y, W: s.Player.W, H: s.Player.H}
}

func TestMoveClampsLane(t *testing.T) {
	s := newRun(t, config.Default(), nil)

	s.Move(-1)
	s.Move(-1)
	if s.Player.Lane != 0 {
		t.Fatalf("lane = %d, want 0", s.Player.Lane)
	}
	s.Move(10)
	if s.Player.Lane != 3 {
		t.Fatalf("lane = %d, want 3", s.Player.Lane)
	}
}

func TestUpdateOnlyWhilePlaying(t *testing.T) {
	s := New(config.Default(), nil, 1)
	s.Resize(400, 800)
	s.Update(frame)
	if s.Runtime != 0 {
		t.Fatalf("menu runtime = %v, want 0", s.Runtime)
	}

	s = newRun(t, config.Default(), nil)
	s.Update(frame)
	if !s.TogglePause() {
		t.Fatalf("TogglePause returned false while playing")
	}
	runtime, x, speed := s.Runtime, s.Player.X, s.Speed
	s.Update(0.5)
	if s.Runtime != runtime || s.Player.X != x || s.Speed != speed {
		t.Fatalf("paused state advanced")
	}
	s.TogglePause()
	s.Update(frame)
	if s.Runtime <= runtime {
		t.Fatalf("runtime did not resume")
	}
}

func TestFrameDeltaClamp(t *testing.T) {
	s := newRun(t, config.Default(), nil)

	s.Update(5)
	if math.Abs(s.Runtime-frame) > 1e-9 {
		t.Fatalf("runtime = %v, want %v", s.Runtime, frame)
	}
	s.Update(0)
	s.Update(-1)
	if math.Abs(s.Runtime-frame) > 1e-9 {
		t.Fatalf("non-positive dt advanced runtime to %v", s.Runtime)
	}
}

func TestPlayerEasesToLane(t *testing.T) {
	s := newRun(t, config.Default(), nil)
	s.Move(1)
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	want := s.Layout.LaneLeft(2, s.Player.W)
	if math.Abs(s.Player.X-want) > 0.5 {
		t.Fatalf("player x = %v, want about %v", s.Player.X, want)
	}
}

func TestAddScoreDrainsCoinBuffer(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.CoinBuffer = 90
	s := newRun(t, config.Default(), p)

	s.AddScore(20, 0, 0)
	if p.CoinBuffer != 10 || p.Coins != 5 {
		t.Fatalf("buffer=%d coins=%d, want 10 and 5", p.CoinBuffer, p.Coins)
	}

	s.Drain()
	s.AddScore(250, 0, 0)
	if p.CoinBuffer != 60 || p.Coins != 15 {
		t.Fatalf("buffer=%d coins=%d, want 60 and 15", p.CoinBuffer, p.Coins)
	}
	coins := 0
	for _, e := range s.Drain() {
		if e.Kind == EventCoin {
			coins++
		}
	}
	if coins != 2 {
		t.Fatalf("coin events = %d, want 2", coins)
	}
}

func TestComboMultiplier(t *testing.T) {
	rules, _ := config.Preset("hearts")
	s := newRun(t, rules, nil)

	tests := []struct {
		combo int
		want  int
	}{
		{0, 1}, {4, 1}, {5, 2}, {10, 3}, {15, 4}, {40, 4},
	}
	for _, tt := range tests {
		s.Combo = tt.combo
		if got := s.ComboMultiplier(); got != tt.want {
			t.Fatalf("combo %d: multiplier = %d, want %d", tt.combo, got, tt.want)
		}
	}
}

func TestPassAtCheckpoint(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Score = 9980
	s := newRun(t, config.Default(), p)

	s.Traffic = append(s.Traffic, Traffic{Rect: laneBox(s, 3, 665)})
	events := s.Update(frame)

	if !Has(events, EventCheckpoint) {
		t.Fatalf("no checkpoint event in %v", events)
	}
	if p.Ring != 1 || p.Score != 0 {
		t.Fatalf("ring=%d score=%d, want 1 and 0", p.Ring, p.Score)
	}
	if p.Best != 10000 {
		t.Fatalf("best = %d, want 10000", p.Best)
	}
	if s.Phase != PhaseWave {
		t.Fatalf("phase = %v, want wave", s.Phase)
	}
}

func TestCrashOnLastHeartEndsRun(t *testing.T) {
	p := models.NewProgress(1, 10000)
	p.Score = 500
	p.Best = 100
	p.Coins = 30
	s := newRun(t, config.Default(), p)

	s.Traffic = append(s.Traffic, Traffic{Rect: s.Player.Rect()})
	s.Traffic = append(s.Traffic, Traffic{Rect: laneBox(s, 3, 100)})
	events := s.Update(frame)

	if s.Mode != ModeGameOver {
		t.Fatalf("mode = %v, want game_over", s.Mode)
	}
	if !Has(events, EventGameOver) || !Has(events, EventPersist) {
		t.Fatalf("events = %v", events)
	}
	if p.Best != 500 || !s.NewBest || s.LastScore != 500 {
		t.Fatalf("best=%d newBest=%v last=%d", p.Best, s.NewBest, s.LastScore)
	}
	if p.Coins != 5 || p.Score != 0 {
		t.Fatalf("coins=%d score=%d, want 5 and 0", p.Coins, p.Score)
	}
	if len(s.Traffic) != 0 || len(s.Hostiles) != 0 || len(s.Particles) != 0 {
		t.Fatalf("entities left after game over")
	}

	// Further frames do nothing until the run is restarted
	s.Update(frame)
	if s.Mode != ModeGameOver {
		t.Fatalf("mode changed without restart")
	}
	if err := s.Start(); !errors.Is(err, ErrNotInMenu) {
		t.Fatalf("Start from game over: %v", err)
	}
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start after restart: %v", err)
	}
	if p.Hearts != 5 {
		t.Fatalf("hearts = %d, want refill to 5", p.Hearts)
	}
}

func TestGameOverCoinPenaltyFloors(t *testing.T) {
	rules, _ := config.Preset("classic")
	p := models.NewProgress(1, 10000)
	p.Coins = 10
	s := newRun(t, rules, p)

	s.Traffic = append(s.Traffic, Traffic{Rect: s.Player.Rect()})
	s.Update(frame)

	if s.Mode != ModeGameOver || p.Coins != 0 {
		t.Fatalf("mode=%v coins=%d", s.Mode, p.Coins)
	}
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Inventory.Shield = true
	s := newRun(t, config.Default(), p)

	s.spawnHostile(KindMini)
	s.Hostiles[0].Rect = s.Player.Rect()
	events := s.Update(frame)

	if !Has(events, EventShield) || Has(events, EventHeartLost) {
		t.Fatalf("events = %v", events)
	}
	if p.Inventory.Shield {
		t.Fatalf("shield not consumed")
	}
	if p.Hearts != 5 || len(s.Hostiles) != 0 {
		t.Fatalf("hearts=%d hostiles=%d, want 5 and 0", p.Hearts, len(s.Hostiles))
	}
	if s.Shake <= 0 || s.Shake > s.Rules.ShieldShake {
		t.Fatalf("shake = %v, want in (0, %v]", s.Shake, s.Rules.ShieldShake)
	}

	s.Traffic = append(s.Traffic, Traffic{Rect: s.Player.Rect()})
	events = s.Update(frame)
	if !Has(events, EventHeartLost) || p.Hearts != 4 {
		t.Fatalf("second hit: hearts=%d events=%v", p.Hearts, events)
	}
}

func TestHostilePassPenalty(t *testing.T) {
	combat, _ := config.Preset("combat")
	tests := []struct {
		name       string
		rules      config.Rules
		score      int
		wantScore  int
		wantHearts int
	}{
		{"points", config.Default(), 50, 30, 5},
		{"points floor", config.Default(), 10, 0, 5},
		{"heart", combat, 50, 50, 4},
	}
	for _, tt := range tests {
		p := models.NewProgress(5, 10000)
		p.Score = tt.score
		s := newRun(t, tt.rules, p)

		s.spawnHostile(KindMini)
		s.Hostiles[0].Rect = laneBox(s, 3, 667)
		s.Update(frame)

		if p.Score != tt.wantScore || p.Hearts != tt.wantHearts {
			t.Fatalf("%s: score=%d hearts=%d, want %d and %d", tt.name, p.Score, p.Hearts, tt.wantScore, tt.wantHearts)
		}
		if len(s.Hostiles) != 0 {
			t.Fatalf("%s: escaped hostile not removed", tt.name)
		}
	}
}

func TestFireSpendsCoin(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Coins = 3
	s := newRun(t, config.Default(), p)

	s.spawnHostile(KindMini)
	s.Hostiles[0].Rect = laneBox(s, 0, 100)
	cx, cy := s.Hostiles[0].Center()

	if s.Fire(cx, 700) {
		t.Fatalf("fired at empty road")
	}
	if !s.Fire(cx, cy) {
		t.Fatalf("Fire on hostile returned false")
	}
	if p.Coins != 2 || len(s.Bullets) != 1 {
		t.Fatalf("coins=%d bullets=%d, want 2 and 1", p.Coins, len(s.Bullets))
	}

	p.Coins = 0
	if s.Fire(cx, cy) {
		t.Fatalf("fired without coins")
	}

	classic, _ := config.Preset("classic")
	s = newRun(t, classic, models.NewProgress(1, 10000))
	s.Progress.Coins = 10
	s.Hostiles = append(s.Hostiles, Hostile{Rect: laneBox(s, 0, 100), HP: 1})
	if s.Fire(cx, cy) {
		t.Fatalf("fired with shooting disabled")
	}
}

func TestBossFight(t *testing.T) {
	p := models.NewProgress(1000, 10000)
	p.Ring = 2
	p.Score = 10000
	s := newRun(t, config.Default(), p)

	events := s.Update(frame)
	if s.Phase != PhaseBoss || !Has(events, EventPhaseChange) {
		t.Fatalf("phase = %v, want boss", s.Phase)
	}

	for i := 0; i < 300; i++ {
		s.Update(frame)
		bosses := 0
		for _, h := range s.Hostiles {
			if h.Kind == KindBoss {
				bosses++
			}
		}
		if bosses != 1 {
			t.Fatalf("frame %d: %d bosses", i, bosses)
		}
		if s.Phase != PhaseBoss {
			t.Fatalf("frame %d: left boss phase with boss alive", i)
		}
	}

	boss, ok := s.Boss()
	if !ok || boss.X < 0 || boss.X+boss.W > s.Layout.Width {
		t.Fatalf("boss out of bounds: %+v", boss)
	}

	s.Hostiles[0].HP = 1
	cx, cy := s.Hostiles[0].Center()
	s.Bullets = append(s.Bullets, Projectile{Rect: Rect{X: cx - 4, Y: cy - 7, W: 8, H: 14}})
	events = s.Update(frame)

	if !Has(events, EventBossDown) {
		t.Fatalf("no boss down event in %v", events)
	}
	if s.Phase != PhaseCruising || len(s.Hostiles) != 0 || len(s.BossShots) != 0 {
		t.Fatalf("phase=%v hostiles=%d shots=%d", s.Phase, len(s.Hostiles), len(s.BossShots))
	}
	if p.BossKills != 1 || p.Score != 150 {
		t.Fatalf("boss kills=%d score=%d, want 1 and 150", p.BossKills, p.Score)
	}
	if s.Speed != s.Rules.MaxSpeed {
		t.Fatalf("speed = %v, want %v", s.Speed, s.Rules.MaxSpeed)
	}
}

func TestWaveEndsAtQuota(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Score = 10000
	s := newRun(t, config.Default(), p)
	s.Update(frame)
	if s.Phase != PhaseWave {
		t.Fatalf("phase = %v, want wave", s.Phase)
	}

	for i := 0; i < s.Rules.WaveKillQuota; i++ {
		s.spawnHostile(KindMini)
		h := &s.Hostiles[len(s.Hostiles)-1]
		h.Rect = laneBox(s, 0, 100)
		h.HP = 1
		if !s.hitHostile(h.Rect) {
			t.Fatalf("bullet missed hostile %d", i)
		}
		s.Hostiles = s.Hostiles[:0]
	}
	if s.WaveKills() != s.Rules.WaveKillQuota {
		t.Fatalf("wave kills = %d", s.WaveKills())
	}

	s.Update(frame)
	if s.Phase != PhaseCruising {
		t.Fatalf("phase = %v, want cruising", s.Phase)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() *State {
		rules := config.Default()
		s := New(rules, models.NewProgress(3, 10000), 99)
		s.Resize(400, 800)
		s.Start()
		for i := 0; i < 900; i++ {
			if i%40 == 0 {
				s.Move(1 - (i/40)%3)
			}
			s.Update(frame)
		}
		return s
	}

	a, b := run(), run()
	if a.Mode != b.Mode || a.Progress.Score != b.Progress.Score || a.Progress.Hearts != b.Progress.Hearts {
		t.Fatalf("runs diverged: %v/%d/%d vs %v/%d/%d",
			a.Mode, a.Progress.Score, a.Progress.Hearts, b.Mode, b.Progress.Score, b.Progress.Hearts)
	}
	if len(a.Traffic) != len(b.Traffic) {
		t.Fatalf("traffic %d vs %d", len(a.Traffic), len(b.Traffic))
	}
	for i := range a.Traffic {
		if a.Traffic[i] != b.Traffic[i] {
			t.Fatalf("traffic %d differs: %+v vs %+v", i, a.Traffic[i], b.Traffic[i])
		}
	}
}

func TestTrafficSpawnsAfterGrace(t *testing.T) {
	s := newRun(t, config.Default(), nil)
	for s.Runtime < s.Rules.SpawnGrace-0.05 {
		s.Update(frame)
	}
	if len(s.Traffic) != 0 {
		t.Fatalf("traffic spawned during grace period")
	}
	for i := 0; i < 200; i++ {
		s.Update(frame)
	}
	if len(s.Traffic) == 0 && s.Mode == ModePlaying {
		t.Fatalf("no traffic after grace period")
	}
}

func TestBuy(t *testing.T) {
	p := models.NewProgress(5, 10000)
	p.Coins = 100
	s := New(config.Default(), p, 1)

	if err := s.Buy(models.UpgradeShield); err != nil {
		t.Fatalf("Buy shield: %v", err)
	}
	if p.Coins != 50 || !p.Inventory.Shield {
		t.Fatalf("coins=%d shield=%v", p.Coins, p.Inventory.Shield)
	}

	tests := []struct {
		item string
		want error
	}{
		{models.UpgradeShield, ErrAlreadyOwned},
		{models.UpgradeDouble, ErrInsufficientCoins},
		{"jetpack", ErrUnknownItem},
	}
	for _, tt := range tests {
		if err := s.Buy(tt.item); !errors.Is(err, tt.want) {
			t.Fatalf("Buy(%q) = %v, want %v", tt.item, err, tt.want)
		}
	}
	if p.Coins != 50 {
		t.Fatalf("failed purchases spent coins: %d", p.Coins)
	}

	s.Resize(400, 800)
	s.Start()
	if err := s.Buy(models.UpgradeTurbo); !errors.Is(err, ErrNotInMenu) {
		t.Fatalf("Buy while playing = %v", err)
	}
}

func TestSuspendPausesAndPersists(t *testing.T) {
	s := newRun(t, config.Default(), nil)
	s.Suspend()
	events := s.Drain()
	if s.Mode != ModePaused || !Has(events, EventPersist) {
		t.Fatalf("mode=%v events=%v", s.Mode, events)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	s := newRun(t, config.Default(), nil)
	if err := s.Restart(); !errors.Is(err, ErrNotOver) {
		t.Fatalf("Restart while playing = %v", err)
	}
}

func TestStrayHostilesWhileCruising(t *testing.T) {
	s := newRun(t, config.Default(), models.NewProgress(5, 1000000))
	car := Traffic{Rect: laneBox(s, 0, 700)}

	for i := 0; i < 14; i++ {
		s.passCar(car)
	}
	if len(s.Hostiles) != 0 {
		t.Fatalf("hostiles = %d after 14 passes, want 0", len(s.Hostiles))
	}
	s.passCar(car)
	if len(s.Hostiles) != 1 || s.Hostiles[0].Kind != KindMini {
		t.Fatalf("hostiles = %+v after 15 passes, want one mini", s.Hostiles)
	}

	for i := 0; i < 30; i++ {
		s.passCar(car)
	}
	if len(s.Hostiles) != 2 {
		t.Fatalf("hostiles = %d, want cap of 2", len(s.Hostiles))
	}

	rules := config.Default()
	rules.Shooting = false
	s = newRun(t, rules, models.NewProgress(5, 1000000))
	for i := 0; i < 30; i++ {
		s.passCar(car)
	}
	if len(s.Hostiles) != 0 {
		t.Fatalf("stray spawned with shooting disabled")
	}
}

func TestWaveEndsWithoutCoins(t *testing.T) {
	p := models.NewProgress(1000, 1000000)
	s := newRun(t, config.Default(), p)
	s.startWave()

	for i := 0; i < 120*60 && s.Phase == PhaseWave; i++ {
		s.Update(frame)
		if s.waveSpawned > s.Rules.WaveKillQuota {
			t.Fatalf("wave spawned %d hostiles, want at most %d", s.waveSpawned, s.Rules.WaveKillQuota)
		}
	}
	if s.Phase != PhaseCruising {
		t.Fatalf("phase = %v after 120s with no coins, want cruising", s.Phase)
	}
	if s.waveKills != 0 || p.Coins != 0 {
		t.Fatalf("kills=%d coins=%d, want none", s.waveKills, p.Coins)
	}
}

func TestWaveStopsSpawningAtQuota(t *testing.T) {
	s := newRun(t, config.Default(), models.NewProgress(5, 1000000))
	s.startWave()
	s.waveSpawned = s.Rules.WaveKillQuota
	s.Hostiles = append(s.Hostiles, Hostile{Rect: Rect{X: 0, Y: 0, W: 10, H: 10}, Kind: KindMini, HP: 3})

	s.runSpawners(s.Rules.WaveSpawnInterval * 2)
	if len(s.Hostiles) != 1 {
		t.Fatalf("hostiles = %d, want no spawn past the quota", len(s.Hostiles))
	}
	s.checkPhase()
	if s.Phase != PhaseWave {
		t.Fatalf("wave ended with a hostile still on the road")
	}

	s.Hostiles = s.Hostiles[:0]
	s.checkPhase()
	if s.Phase != PhaseCruising {
		t.Fatalf("phase = %v, want cruising once the wave is spent", s.Phase)
	}
}

func TestBossBulletIgnoresShield(t *testing.T) {
	p := models.NewProgress(3, 1000000)
	p.Inventory.Shield = true
	s := newRun(t, config.Default(), p)
	s.Update(frame)

	s.BossShots = append(s.BossShots, Projectile{Rect: Rect{X: s.Player.X, Y: s.Player.Y, W: 10, H: 16}})
	events := s.Update(frame)

	if !p.Inventory.Shield {
		t.Fatalf("boss bullet consumed the shield")
	}
	if p.Hearts != 2 || !Has(events, EventHeartLost) {
		t.Fatalf("hearts = %d, want 2 with a heart-lost event", p.Hearts)
	}
	if len(s.BossShots) != 0 {
		t.Fatalf("bullet kept after hitting")
	}
	if s.Shake <= 0 || s.Shake > s.Rules.BulletShake {
		t.Fatalf("shake = %v, want within (0, %v]", s.Shake, s.Rules.BulletShake)
	}
}

func TestAutoFire(t *testing.T) {
	tests := []struct {
		name        string
		coins       int
		hostile     bool
		phase       Phase
		wantCoins   int
		wantBullets int
	}{
		{"fires in a wave", 3, true, PhaseWave, 2, 1},
		{"no coins skips silently", 0, true, PhaseWave, 0, 0},
		{"no target", 3, false, PhaseWave, 3, 0},
		{"cruising never auto-fires", 3, true, PhaseCruising, 3, 0},
	}
	for _, tt := range tests {
		p := models.NewProgress(5, 1000000)
		p.Coins = tt.coins
		s := newRun(t, config.Default(), p)
		s.Phase = tt.phase
		if tt.hostile {
			s.Hostiles = append(s.Hostiles, Hostile{Rect: Rect{X: 0, Y: 0, W: 10, H: 10}, Kind: KindMini, HP: 3})
		}

		s.tickCooldowns(s.Rules.AutoFireInterval / 2)
		if len(s.Bullets) != 0 {
			t.Fatalf("%s: fired before the interval", tt.name)
		}
		s.tickCooldowns(s.Rules.AutoFireInterval / 2)
		events := s.Drain()

		if p.Coins != tt.wantCoins || len(s.Bullets) != tt.wantBullets {
			t.Fatalf("%s: coins=%d bullets=%d, want %d and %d", tt.name, p.Coins, len(s.Bullets), tt.wantCoins, tt.wantBullets)
		}
		if Has(events, EventShot) != (tt.wantBullets > 0) {
			t.Fatalf("%s: shot event mismatch in %v", tt.name, events)
		}
	}
}

func TestSpeedTarget(t *testing.T) {
	rules := config.Default()
	tests := []struct {
		name  string
		turbo bool
		phase Phase
		want  float64
	}{
		{"cruising", false, PhaseCruising, rules.MaxSpeed * rules.Accel * 0.1},
		{"turbo accelerates harder", true, PhaseCruising, rules.MaxSpeed * rules.TurboAccel * 0.1},
		{"wave slows down", false, PhaseWave, rules.MaxSpeed * rules.CombatSpeedFactor * rules.Accel * 0.1},
		{"boss slows down", false, PhaseBoss, rules.MaxSpeed * rules.CombatSpeedFactor * rules.Accel * 0.1},
	}
	for _, tt := range tests {
		s := newRun(t, rules, nil)
		s.Progress.Inventory.Turbo = tt.turbo
		s.Phase = tt.phase
		s.Speed = 0
		s.integrateSpeed(0.1)
		if math.Abs(s.Speed-tt.want) > 1e-9 {
			t.Fatalf("%s: speed = %v, want %v", tt.name, s.Speed, tt.want)
		}
	}
}

// spawnedCars counts traffic spawned over n spawner ticks past the grace period
func spawnedCars(s *State, n int) int {
	s.Runtime = s.Rules.SpawnGrace + 1
	total := 0
	for i := 0; i < n; i++ {
		s.Traffic = s.Traffic[:0]
		s.runSpawners(s.Rules.SpawnInterval + 0.01)
		total += len(s.Traffic)
	}
	return total
}

func TestTrafficSpawning(t *testing.T) {
	normal := spawnedCars(newRun(t, config.Default(), nil), 2000)

	light := newRun(t, config.Default(), nil)
	light.Progress.Inventory.Traffic = true
	reduced := spawnedCars(light, 2000)

	wave := newRun(t, config.Default(), nil)
	wave.startWave()
	inWave := spawnedCars(wave, 200)

	tests := []struct {
		name     string
		got      int
		min, max int
	}{
		{"normal chance", normal, 1100, 1500},
		{"light traffic upgrade", reduced, 450, 750},
		{"no traffic during a wave", inWave, 0, 0},
	}
	for _, tt := range tests {
		if tt.got < tt.min || tt.got > tt.max {
			t.Fatalf("%s: %d cars, want within [%d, %d]", tt.name, tt.got, tt.min, tt.max)
		}
	}
}

func TestPassPoints(t *testing.T) {
	tests := []struct {
		name   string
		double float64
		want   int
	}{
		{"plain", 0, 20},
		{"double buff", 5, 40},
	}
	for _, tt := range tests {
		p := models.NewProgress(5, 1000000)
		s := newRun(t, config.Default(), p)
		s.DoubleTimer = tt.double
		s.passCar(Traffic{Rect: laneBox(s, 0, 700)})
		if p.Score != tt.want {
			t.Fatalf("%s: score = %d, want %d", tt.name, p.Score, tt.want)
		}
	}
}

func TestParticlesDecay(t *testing.T) {
	s := newRun(t, config.Default(), nil)
	s.explode(100, 100)
	if len(s.Particles) != s.Rules.ParticleCount {
		t.Fatalf("particles = %d, want %d", len(s.Particles), s.Rules.ParticleCount)
	}

	s.updateParticles(0.1)
	want := 1 - s.Rules.ParticleDecay*0.1
	for _, p := range s.Particles {
		if math.Abs(p.Life-want) > 1e-9 {
			t.Fatalf("life = %v, want %v", p.Life, want)
		}
	}

	s.updateParticles(0.5)
	if len(s.Particles) != 0 {
		t.Fatalf("particles = %d after burning out, want 0", len(s.Particles))
	}
}
