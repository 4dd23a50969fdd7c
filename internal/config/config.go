// Package config provides YAML-based configuration loading and mode
// settings for the snake arena.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownMode is returned when a mode name is not one of the known modes.
var ErrUnknownMode = errors.New("config: unknown mode")

// Growth policies accepted by SnakeConfig.GrowthPolicy.
const (
	GrowthImmediate = "immediate"
	GrowthDeferred  = "deferred"
)

// Config contains every tunable of the simulation.
type Config struct {
	Grid       GridConfig            `yaml:"grid"`
	Speed      SpeedConfig           `yaml:"speed"`
	Snake      SnakeConfig           `yaml:"snake"`
	Food       FoodConfig            `yaml:"food"`
	Score      ScoreConfig           `yaml:"score"`
	Modes      map[string]ModeConfig `yaml:"modes"`
	TimeAttack TimeAttackConfig      `yaml:"time_attack"`
	AI         AIConfig              `yaml:"ai"`
	Boss       BossConfig            `yaml:"boss"`
	Campaign   CampaignConfig        `yaml:"campaign"`
}

// GridConfig defines the play field. Cell counts are Width/CellSize by Height/CellSize.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the move interval in milliseconds. Lower is faster.
type SpeedConfig struct {
	BaseMS          float64 `yaml:"base_ms"`
	IncreasePerFood float64 `yaml:"increase_per_food"`
	MinMS           float64 `yaml:"min_ms"`
}

// SnakeConfig defines snake body parameters.
type SnakeConfig struct {
	InitialLength int    `yaml:"initial_length"`
	MinLength     int    `yaml:"min_length"`
	GrowthPolicy  string `yaml:"growth_policy"` // "immediate" or "deferred"
}

// FoodConfig defines food spawning.
type FoodConfig struct {
	MaxItems       int              `yaml:"max_items"`
	InitialSpawn   int              `yaml:"initial_spawn"`
	GoldenInterval IntervalConfig   `yaml:"golden_interval"`
	Kinds          []FoodKindConfig `yaml:"kinds"` // declaration order drives the weighted draw
}

// IntervalConfig is an inclusive integer range.
type IntervalConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FoodKindConfig is the static descriptor of one food kind.
type FoodKindConfig struct {
	Name   string        `yaml:"name"`
	Score  int           `yaml:"score"`
	Growth int           `yaml:"growth"`
	Weight int           `yaml:"weight"`
	Effect *EffectConfig `yaml:"effect,omitempty"`
}

// EffectConfig is a timed speed modifier carried by a food kind.
type EffectConfig struct {
	Type       string  `yaml:"type"` // "speed" or "slow"
	Multiplier float64 `yaml:"multiplier"`
	DurationMS int     `yaml:"duration_ms"`
}

// Duration returns the effect lifetime.
func (e EffectConfig) Duration() time.Duration {
	return time.Duration(e.DurationMS) * time.Millisecond
}

// ScoreConfig defines scoring and combo rules.
type ScoreConfig struct {
	ComboWindowMS   int              `yaml:"combo_window_ms"`
	ComboThresholds []ComboThreshold `yaml:"combo_thresholds"`
	LevelBonus      int              `yaml:"level_bonus"`
	NoDeathBonus    int              `yaml:"no_death_bonus"`
	AIKillBonus     int              `yaml:"ai_kill_bonus"`
	HighScoreKey    string           `yaml:"high_score_key"`
}

// ComboWindow returns the combo window as a duration.
func (s ScoreConfig) ComboWindow() time.Duration {
	return time.Duration(s.ComboWindowMS) * time.Millisecond
}

// ComboThreshold maps a minimum combo count to a multiplier.
type ComboThreshold struct {
	Count      int `yaml:"count"`
	Multiplier int `yaml:"multiplier"`
}

// ModeConfig defines per-mode speed behavior.
type ModeConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	SpeedIncrease   bool    `yaml:"speed_increase"`
}

// TimeAttackConfig defines the time attack countdown and goal.
type TimeAttackConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
	FoodTarget      int `yaml:"food_target"`
}

// Duration returns the countdown length.
func (t TimeAttackConfig) Duration() time.Duration {
	return time.Duration(t.DurationSeconds) * time.Second
}

// AIConfig defines the enemy snake controller.
type AIConfig struct {
	ThinkIntervalMS int     `yaml:"think_interval_ms"`
	Aggression      float64 `yaml:"aggression"`
}

// ThinkInterval returns the decision cadence.
func (a AIConfig) ThinkInterval() time.Duration {
	return time.Duration(a.ThinkIntervalMS) * time.Millisecond
}

// BossConfig defines the boss level.
type BossConfig struct {
	DurationSeconds int     `yaml:"duration_seconds"`
	Obstacles       int     `yaml:"obstacles"`
	Speed           float64 `yaml:"speed"` // cells per second per unit velocity
}

// Duration returns the boss countdown length.
func (b BossConfig) Duration() time.Duration {
	return time.Duration(b.DurationSeconds) * time.Second
}

// CampaignConfig defines optional level progression by food eaten.
type CampaignConfig struct {
	LevelFoodTarget int `yaml:"level_food_target"` // 0 disables auto-advance
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 || c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive")
	}
	if c.Grid.Width/c.Grid.CellSize < 8 || c.Grid.Height/c.Grid.CellSize < 8 {
		return fmt.Errorf("config: grid must be at least 8x8 cells")
	}
	if c.Speed.BaseMS <= 0 || c.Speed.MinMS <= 0 {
		return fmt.Errorf("config: speed values must be positive")
	}
	if c.Speed.IncreasePerFood < 0 {
		return fmt.Errorf("config: speed increase must not be negative")
	}
	if c.Snake.InitialLength < 1 || c.Snake.MinLength < 1 {
		return fmt.Errorf("config: snake lengths must be positive")
	}
	if c.Snake.InitialLength < c.Snake.MinLength {
		return fmt.Errorf("config: initial length %d below minimum %d", c.Snake.InitialLength, c.Snake.MinLength)
	}
	switch c.Snake.GrowthPolicy {
	case GrowthImmediate, GrowthDeferred:
	default:
		return fmt.Errorf("config: unknown growth policy %q", c.Snake.GrowthPolicy)
	}
	if c.Food.MaxItems <= 0 {
		return fmt.Errorf("config: food max_items must be positive")
	}
	if c.Food.GoldenInterval.Min > c.Food.GoldenInterval.Max {
		return fmt.Errorf("config: golden interval min %d > max %d", c.Food.GoldenInterval.Min, c.Food.GoldenInterval.Max)
	}
	if len(c.Food.Kinds) == 0 {
		return fmt.Errorf("config: no food kinds")
	}
	total := 0
	for _, k := range c.Food.Kinds {
		if k.Weight < 0 {
			return fmt.Errorf("config: food kind %q has negative weight", k.Name)
		}
		if k.Name != "golden" {
			total += k.Weight
		}
		if k.Effect != nil && k.Effect.Multiplier <= 0 {
			return fmt.Errorf("config: food kind %q effect multiplier must be positive", k.Name)
		}
	}
	if total <= 0 {
		return fmt.Errorf("config: food weights sum to zero")
	}
	if c.Score.ComboWindowMS <= 0 {
		return fmt.Errorf("config: combo window must be positive")
	}
	for _, name := range ModeNames() {
		m, ok := c.Modes[name]
		if !ok {
			return fmt.Errorf("config: missing settings for mode %q", name)
		}
		if m.SpeedMultiplier <= 0 {
			return fmt.Errorf("config: mode %q speed multiplier must be positive", name)
		}
	}
	if c.TimeAttack.DurationSeconds <= 0 {
		return fmt.Errorf("config: time attack duration must be positive")
	}
	if c.Boss.DurationSeconds <= 0 || c.Boss.Obstacles < 0 {
		return fmt.Errorf("config: boss duration must be positive and obstacles not negative")
	}
	if c.AI.ThinkIntervalMS <= 0 {
		return fmt.Errorf("config: ai think interval must be positive")
	}
	if c.Campaign.LevelFoodTarget < 0 {
		return fmt.Errorf("config: campaign food target must not be negative")
	}
	return nil
}
