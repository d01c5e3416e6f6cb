package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownVariant is returned when a preset name is not registered
var ErrUnknownVariant = errors.New("unknown variant")

// Pass penalty rulesets applied when a hostile slips past the player
const (
	PenaltyPoints = "points"
	PenaltyHeart  = "heart"
	PenaltyNone   = "none"
)

// Rules holds every tunable of the lane-dodge engine.
// The feature flags select which of the game variants is being played.
type Rules struct {
	Name string `toml:"name"`

	// Feature flags
	Hearts      bool   `toml:"hearts"`      // multi-heart runs; false = any crash ends the run
	Combo       bool   `toml:"combo"`       // consecutive pass multiplier
	DoubleBuff  bool   `toml:"double_buff"` // "double" upgrade doubles pass points while its timer runs
	Shooting    bool   `toml:"shooting"`    // taps fire at hostiles, stray hostiles appear
	Waves       bool   `toml:"waves"`       // checkpoints start hostile waves
	Boss        bool   `toml:"boss"`        // every BossEvery-th checkpoint starts a boss fight
	AutoFire    bool   `toml:"auto_fire"`   // fire automatically during combat
	PassPenalty string `toml:"pass_penalty"`

	// Road and player
	LaneCount    int     `toml:"lane_count"`
	StartLane    int     `toml:"start_lane"`
	PlayerWidth  float64 `toml:"player_width"`  // fraction of viewport width
	PlayerAspect float64 `toml:"player_aspect"` // height / width
	PlayerRow    float64 `toml:"player_row"`    // fraction of viewport height
	LerpRate     float64 `toml:"lerp_rate"`
	TiltFactor   float64 `toml:"tilt_factor"`

	// Speed
	MaxSpeed          float64 `toml:"max_speed"`
	StartSpeed        float64 `toml:"start_speed"`
	TurboStartSpeed   float64 `toml:"turbo_start_speed"`
	Accel             float64 `toml:"accel"`
	TurboAccel        float64 `toml:"turbo_accel"`
	CombatSpeedFactor float64 `toml:"combat_speed_factor"`
	ScrollBase        float64 `toml:"scroll_base"`
	ScrollPerSpeed    float64 `toml:"scroll_per_speed"`
	TrafficSpeed      float64 `toml:"traffic_speed"` // fraction of scroll speed
	MarkingTile       float64 `toml:"marking_tile"`

	// Frame timing
	MaxFrameDelta float64 `toml:"max_frame_delta"`
	FallbackDelta float64 `toml:"fallback_delta"`

	// Traffic
	SpawnInterval      float64 `toml:"spawn_interval"`
	SpawnGrace         float64 `toml:"spawn_grace"`
	SpawnChance        float64 `toml:"spawn_chance"`
	ReducedSpawnChance float64 `toml:"reduced_spawn_chance"`
	SpawnY             float64 `toml:"spawn_y"`
	CollisionPad       float64 `toml:"collision_pad"`

	// Scoring and economy
	PassPoints          int     `toml:"pass_points"`
	CoinExchange        int     `toml:"coin_exchange"`
	CoinReward          int     `toml:"coin_reward"`
	StartHearts         int     `toml:"start_hearts"`
	GameOverCoinPenalty int     `toml:"game_over_coin_penalty"`
	ComboTimeout        float64 `toml:"combo_timeout"`
	ComboStep           int     `toml:"combo_step"`
	ComboMax            int     `toml:"combo_max"`
	DoubleDuration      float64 `toml:"double_duration"`

	// Checkpoints
	CheckpointScore        int  `toml:"checkpoint_score"`
	ResetScoreOnCheckpoint bool `toml:"reset_score_on_checkpoint"`
	BossEvery              int  `toml:"boss_every"`

	// Hostiles
	StrayEvery        int     `toml:"stray_every"`
	MaxStrays         int     `toml:"max_strays"`
	WaveKillQuota     int     `toml:"wave_kill_quota"`
	WaveSpawnInterval float64 `toml:"wave_spawn_interval"`
	WaveMaxHostiles   int     `toml:"wave_max_hostiles"`
	MonsterEvery      int     `toml:"monster_every"`
	MiniHP            int     `toml:"mini_hp"`
	MiniSpeed         float64 `toml:"mini_speed"`
	MiniBonus         int     `toml:"mini_bonus"`
	MiniPenalty       int     `toml:"mini_penalty"`
	MonsterHP         int     `toml:"monster_hp"`
	MonsterSpeed      float64 `toml:"monster_speed"`
	MonsterBonus      int     `toml:"monster_bonus"`
	MonsterPenalty    int     `toml:"monster_penalty"`

	// Boss
	BossHP            int     `toml:"boss_hp"`
	BossSpeed         float64 `toml:"boss_speed"`
	BossWidth         float64 `toml:"boss_width"`
	BossHeight        float64 `toml:"boss_height"`
	BossRow           float64 `toml:"boss_row"`
	BossShootInterval float64 `toml:"boss_shoot_interval"`
	BossBulletSpeed   float64 `toml:"boss_bullet_speed"`
	BossBonus         int     `toml:"boss_bonus"`

	// Shooting
	BulletSpeed      float64 `toml:"bullet_speed"`
	ShotCost         int     `toml:"shot_cost"`
	AutoFireInterval float64 `toml:"auto_fire_interval"`

	// Effects
	ParticleCount  int     `toml:"particle_count"`
	ParticleSpread float64 `toml:"particle_spread"`
	ParticleDecay  float64 `toml:"particle_decay"`
	CrashShake     float64 `toml:"crash_shake"`
	ShieldShake    float64 `toml:"shield_shake"`
	BulletShake    float64 `toml:"bullet_shake"`

	// Shop prices keyed by upgrade name
	Prices map[string]int `toml:"prices"`
}

// Default returns the richest variant: hearts, waves, boss fights and shooting.
func Default() Rules {
	return Rules{
		Name:        "boss",
		Hearts:      true,
		Combo:       false,
		DoubleBuff:  true,
		Shooting:    true,
		Waves:       true,
		Boss:        true,
		AutoFire:    true,
		PassPenalty: PenaltyPoints,

		LaneCount:    4,
		StartLane:    1,
		PlayerWidth:  0.11,
		PlayerAspect: 1.5,
		PlayerRow:    0.75,
		LerpRate:     12,
		TiltFactor:   0.08,

		MaxSpeed:          80,
		StartSpeed:        20,
		TurboStartSpeed:   40,
		Accel:             0.8,
		TurboAccel:        1.2,
		CombatSpeedFactor: 0.6,
		ScrollBase:        100,
		ScrollPerSpeed:    8,
		TrafficSpeed:      0.8,
		MarkingTile:       40,

		MaxFrameDelta: 0.1,
		FallbackDelta: 0.016,

		SpawnInterval:      0.45,
		SpawnGrace:         1.5,
		SpawnChance:        0.65,
		ReducedSpawnChance: 0.30,
		SpawnY:             -250,
		CollisionPad:       8,

		PassPoints:          20,
		CoinExchange:        100,
		CoinReward:          5,
		StartHearts:         5,
		GameOverCoinPenalty: 25,
		ComboTimeout:        2.0,
		ComboStep:           5,
		ComboMax:            4,
		DoubleDuration:      30,

		CheckpointScore:        10000,
		ResetScoreOnCheckpoint: true,
		BossEvery:              3,

		StrayEvery:        15,
		MaxStrays:         2,
		WaveKillQuota:     6,
		WaveSpawnInterval: 1.1,
		WaveMaxHostiles:   3,
		MonsterEvery:      4,
		MiniHP:            3,
		MiniSpeed:         180,
		MiniBonus:         20,
		MiniPenalty:       20,
		MonsterHP:         6,
		MonsterSpeed:      110,
		MonsterBonus:      60,
		MonsterPenalty:    100,

		BossHP:            25,
		BossSpeed:         120,
		BossWidth:         120,
		BossHeight:        60,
		BossRow:           80,
		BossShootInterval: 1.2,
		BossBulletSpeed:   300,
		BossBonus:         150,

		BulletSpeed:      500,
		ShotCost:         1,
		AutoFireInterval: 0.6,

		ParticleCount:  20,
		ParticleSpread: 20,
		ParticleDecay:  2.5,
		CrashShake:     15,
		ShieldShake:    10,
		BulletShake:    10,

		Prices: map[string]int{
			"turbo":   150,
			"shield":  50,
			"double":  200,
			"traffic": 300,
		},
	}
}

var presets = map[string]func() Rules{
	// Single heart, no hostiles: the first prototype.
	"classic": func() Rules {
		r := Default()
		r.Name = "classic"
		r.Hearts = false
		r.StartHearts = 1
		r.Shooting = false
		r.Waves = false
		r.Boss = false
		r.AutoFire = false
		r.PassPenalty = PenaltyNone
		return r
	},
	// Hearts and combo scoring, still no hostiles.
	"hearts": func() Rules {
		r := Default()
		r.Name = "hearts"
		r.Combo = true
		r.Shooting = false
		r.Waves = false
		r.Boss = false
		r.AutoFire = false
		r.PassPenalty = PenaltyNone
		return r
	},
	// Waves of hostiles that cost a heart when they slip past.
	"combat": func() Rules {
		r := Default()
		r.Name = "combat"
		r.Combo = true
		r.Boss = false
		r.PassPenalty = PenaltyHeart
		return r
	},
	"boss": Default,
}

// Preset returns the named variant
func Preset(name string) (Rules, error) {
	if name == "" {
		return Default(), nil
	}
	build, ok := presets[name]
	if !ok {
		return Rules{}, fmt.Errorf("preset %q (have %s): %w", name, strings.Join(Presets(), ", "), ErrUnknownVariant)
	}
	return build(), nil
}

// Presets lists the registered variant names in order
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects values the engine cannot run with
func (r Rules) Validate() error {
	switch {
	case r.LaneCount < 1:
		return fmt.Errorf("lane_count must be at least 1, got %d", r.LaneCount)
	case r.StartLane < 0 || r.StartLane >= r.LaneCount:
		return fmt.Errorf("start_lane %d outside [0, %d]", r.StartLane, r.LaneCount-1)
	case r.CoinExchange <= 0:
		return fmt.Errorf("coin_exchange must be positive, got %d", r.CoinExchange)
	case r.CheckpointScore <= 0:
		return fmt.Errorf("checkpoint_score must be positive, got %d", r.CheckpointScore)
	case r.MaxFrameDelta <= 0 || r.FallbackDelta <= 0:
		return fmt.Errorf("frame deltas must be positive")
	case r.MarkingTile <= 0:
		return fmt.Errorf("marking_tile must be positive, got %v", r.MarkingTile)
	case r.Boss && r.BossEvery < 1:
		return fmt.Errorf("boss_every must be at least 1 when boss fights are enabled")
	case r.Hearts && r.StartHearts < 1:
		return fmt.Errorf("start_hearts must be at least 1 when hearts are enabled")
	case r.Waves && r.WaveKillQuota < 1:
		return fmt.Errorf("wave_kill_quota must be at least 1 when waves are enabled, got %d", r.WaveKillQuota)
	case r.ComboStep < 0:
		return fmt.Errorf("combo_step must not be negative, got %d", r.ComboStep)
	case r.MonsterEvery < 0:
		return fmt.Errorf("monster_every must not be negative, got %d", r.MonsterEvery)
	case r.AutoFire && r.AutoFireInterval <= 0:
		return fmt.Errorf("auto_fire_interval must be positive when auto-fire is enabled, got %v", r.AutoFireInterval)
	}
	switch r.PassPenalty {
	case PenaltyPoints, PenaltyHeart, PenaltyNone:
	default:
		return fmt.Errorf("pass_penalty %q: want %q, %q or %q", r.PassPenalty, PenaltyPoints, PenaltyHeart, PenaltyNone)
	}
	return nil
}
