package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if cfg.Grid.Width/cfg.Grid.CellSize != 40 || cfg.Grid.Height/cfg.Grid.CellSize != 30 {
		t.Errorf("default grid should be 40x30 cells")
	}
	if cfg.Score.ComboWindow() != 2*time.Second {
		t.Errorf("ComboWindow() = %v", cfg.Score.ComboWindow())
	}
	if cfg.AI.ThinkInterval() != 200*time.Millisecond {
		t.Errorf("ThinkInterval() = %v", cfg.AI.ThinkInterval())
	}
	if cfg.TimeAttack.Duration() != time.Minute {
		t.Errorf("time attack Duration() = %v", cfg.TimeAttack.Duration())
	}
	if cfg.Boss.Duration() != 90*time.Second {
		t.Errorf("boss Duration() = %v", cfg.Boss.Duration())
	}
}

func TestModeSettings(t *testing.T) {
	cfg := Default()

	tests := []struct {
		mode     string
		mult     float64
		increase bool
	}{
		{ModeEndless, 1.0, true},
		{ModeTimeAttack, 1.2, true},
		{ModeHard, 1.5, true},
		{ModeKids, 0.7, false},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			m, err := cfg.ModeSettings(tc.mode)
			if err != nil {
				t.Fatalf("ModeSettings(%q) error: %v", tc.mode, err)
			}
			if m.SpeedMultiplier != tc.mult || m.SpeedIncrease != tc.increase {
				t.Errorf("ModeSettings(%q) = %+v", tc.mode, m)
			}
		})
	}

	if _, err := cfg.ModeSettings("zen"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode error = %v, expected ErrUnknownMode", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.Grid.CellSize = 0 }},
		{"tiny grid", func(c *Config) { c.Grid.Width = 100 }},
		{"zero base speed", func(c *Config) { c.Speed.BaseMS = 0 }},
		{"initial below minimum", func(c *Config) { c.Snake.InitialLength = 2 }},
		{"bad growth policy", func(c *Config) { c.Snake.GrowthPolicy = "later" }},
		{"no food slots", func(c *Config) { c.Food.MaxItems = 0 }},
		{"golden interval reversed", func(c *Config) { c.Food.GoldenInterval = IntervalConfig{Min: 9, Max: 2} }},
		{"zero weights", func(c *Config) {
			for i := range c.Food.Kinds {
				c.Food.Kinds[i].Weight = 0
			}
		}},
		{"zero combo window", func(c *Config) { c.Score.ComboWindowMS = 0 }},
		{"missing mode", func(c *Config) { delete(c.Modes, ModeKids) }},
		{"zero think interval", func(c *Config) { c.AI.ThinkIntervalMS = 0 }},
		{"zero time attack", func(c *Config) { c.TimeAttack.DurationSeconds = 0 }},
		{"negative boss obstacles", func(c *Config) { c.Boss.Obstacles = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("speed:\n  base_ms: 200\ncampaign:\n  level_food_target: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Speed.BaseMS != 200 {
		t.Errorf("BaseMS = %v, expected 200", cfg.Speed.BaseMS)
	}
	if cfg.Campaign.LevelFoodTarget != 10 {
		t.Errorf("LevelFoodTarget = %d, expected 10", cfg.Campaign.LevelFoodTarget)
	}
	// Untouched keys keep defaults
	if cfg.Speed.MinMS != 30 || len(cfg.Food.Kinds) != 5 {
		t.Errorf("defaults not preserved: %+v", cfg.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cell_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid config should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("ai:\n  aggression: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AI.Aggression != 0.9 {
		t.Errorf("Aggression = %v, expected 0.9 from user config", cfg.AI.Aggression)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Load() without files should equal defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := decode(data)
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled defaults did not decode back to defaults")
	}
}
