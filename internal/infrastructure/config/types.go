package config

import "time"

// GameConfig is the root of tuning.yaml.
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Timing  TimingConfig  `yaml:"timing"`
	Levels  LevelsConfig  `yaml:"levels"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	TickRate     int `yaml:"tickRate"` // simulation ticks per second
}

// TickDuration is the simulated time covered by one tick.
func (d DisplayConfig) TickDuration() time.Duration {
	if d.TickRate <= 0 {
		return 10 * time.Millisecond
	}
	return time.Second / time.Duration(d.TickRate)
}

type PlayerConfig struct {
	HP           int `yaml:"hp"`
	MaxHP        int `yaml:"maxHP"`
	SpeedFactor  int `yaml:"speedFactor"`
	Gravity      int `yaml:"gravity"`
	MaxFallSpeed int `yaml:"maxFallSpeed"`
	JumpImpulse  int `yaml:"jumpImpulse"`
}

type CombatConfig struct {
	ContactDamageDelayMs int                 `yaml:"contactDamageDelayMs"`
	AttackScale          float64             `yaml:"attackScale"`
	OutOfBoundsMargin    int                 `yaml:"outOfBoundsMargin"`
	SummonHitbox         SummonHitboxConfig  `yaml:"summonHitbox"`
	SummonBounds         SummonBoundsConfig  `yaml:"summonBounds"`
	Reinforcement        ReinforcementConfig `yaml:"reinforcement"`
}

// ContactDamageDelay is how long enemy contact lasts before it hurts.
func (c CombatConfig) ContactDamageDelay() time.Duration {
	return time.Duration(c.ContactDamageDelayMs) * time.Millisecond
}

// SummonHitboxConfig shrinks a summon to its inner hit region.
type SummonHitboxConfig struct {
	WidthDivisor  float64 `yaml:"widthDivisor"`
	HeightDivisor float64 `yaml:"heightDivisor"`
	Inset         int     `yaml:"inset"`
}

// SummonBoundsConfig is where summons leave the arena.
type SummonBoundsConfig struct {
	MaxY int `yaml:"maxY"`
	MinX int `yaml:"minX"`
}

// ReinforcementConfig describes the patrol enemy spawned by the final boss.
type ReinforcementConfig struct {
	MinX   int `yaml:"minX"`
	MaxX   int `yaml:"maxX"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Type   int `yaml:"type"`
	Every  int `yaml:"every"` // health divisor that triggers a spawn
}

type TimingConfig struct {
	LoadingDelayMs   int `yaml:"loadingDelayMs"`
	LoadingFrameMs   int `yaml:"loadingFrameMs"`
	BannerDurationMs int `yaml:"bannerDurationMs"`
}

func (t TimingConfig) LoadingDelay() time.Duration {
	return time.Duration(t.LoadingDelayMs) * time.Millisecond
}

func (t TimingConfig) LoadingFrame() time.Duration {
	return time.Duration(t.LoadingFrameMs) * time.Millisecond
}

func (t TimingConfig) BannerDuration() time.Duration {
	return time.Duration(t.BannerDurationMs) * time.Millisecond
}

// Default returns the stock configuration. Loaded files are decoded on top
// of it so absent keys keep these values.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{ScreenWidth: 1280, ScreenHeight: 720, Scale: 1, TickRate: 100},
		Player: PlayerConfig{
			HP:           6,
			MaxHP:        6,
			SpeedFactor:  3,
			Gravity:      1,
			MaxFallSpeed: 10,
			JumpImpulse:  17,
		},
		Combat: CombatConfig{
			ContactDamageDelayMs: 400,
			AttackScale:          1.2,
			OutOfBoundsMargin:    200,
			SummonHitbox:         SummonHitboxConfig{WidthDivisor: 4.2, HeightDivisor: 4, Inset: 10},
			SummonBounds:         SummonBoundsConfig{MaxY: 555, MinX: 5},
			Reinforcement: ReinforcementConfig{
				MinX:   50,
				MaxX:   1030,
				Width:  100,
				Height: 115,
				Type:   1,
				Every:  4,
			},
		},
		Timing: TimingConfig{LoadingDelayMs: 3500, LoadingFrameMs: 500, BannerDurationMs: 3500},
		Levels: DefaultLevels(),
	}
}
