package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It mirrors defaults/snake.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    800,
			Height:   600,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			BaseMS:          150,
			IncreasePerFood: 3,
			MinMS:           30,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
			MinLength:     3,
			GrowthPolicy:  GrowthImmediate,
		},
		Food: FoodConfig{
			MaxItems:       3,
			InitialSpawn:   2,
			GoldenInterval: IntervalConfig{Min: 5, Max: 8},
			Kinds: []FoodKindConfig{
				{Name: "normal", Score: 1, Growth: 1, Weight: 70},
				{Name: "golden", Score: 5, Growth: 2, Weight: 10},
				{Name: "bomb", Score: -2, Growth: -2, Weight: 15},
				{Name: "speed_boost", Score: 2, Growth: 1, Weight: 8,
					Effect: &EffectConfig{Type: "speed", Multiplier: 1.3, DurationMS: 5000}},
				{Name: "slow_time", Score: 2, Growth: 1, Weight: 7,
					Effect: &EffectConfig{Type: "slow", Multiplier: 0.5, DurationMS: 3000}},
			},
		},
		Score: ScoreConfig{
			ComboWindowMS: 2000,
			ComboThresholds: []ComboThreshold{
				{Count: 3, Multiplier: 2},
				{Count: 6, Multiplier: 3},
			},
			LevelBonus:   20,
			NoDeathBonus: 10,
			AIKillBonus:  5,
			HighScoreKey: "snakeHighScore",
		},
		Modes: map[string]ModeConfig{
			ModeEndless:    {SpeedMultiplier: 1.0, SpeedIncrease: true},
			ModeTimeAttack: {SpeedMultiplier: 1.2, SpeedIncrease: true},
			ModeHard:       {SpeedMultiplier: 1.5, SpeedIncrease: true},
			ModeKids:       {SpeedMultiplier: 0.7, SpeedIncrease: false},
		},
		TimeAttack: TimeAttackConfig{
			DurationSeconds: 60,
			FoodTarget:      20,
		},
		AI: AIConfig{
			ThinkIntervalMS: 200,
			Aggression:      0.3,
		},
		Boss: BossConfig{
			DurationSeconds: 90,
			Obstacles:       5,
			Speed:           2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
