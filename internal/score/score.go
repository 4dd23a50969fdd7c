// Package score accumulates points, tracks the combo multiplier and keeps the
// high score in an injected store.
package score

import (
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
)

// Combo is the current combo state.
type Combo struct {
	Count      int
	Multiplier int
	LastFood   time.Duration // Simulation time of the last meal
}

// Engine tracks score, combo and high score for one match.
type Engine struct {
	window       time.Duration
	thresholds   []config.ComboThreshold // highest count first
	levelBonus   int
	noDeathBonus int
	store        HighScoreStore
	logger       *log.Logger

	score     int
	highScore int
	foodEaten int
	combo     Combo
}

// NewEngine creates a score engine and loads the stored high score.
// A nil store keeps the high score in memory; a nil logger discards output.
// Store read failures are logged and treated as a zero high score.
func NewEngine(cfg config.ScoreConfig, store HighScoreStore, logger *log.Logger) *Engine {
	if store == nil {
		store = NewMemoryStore(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	thresholds := append([]config.ComboThreshold(nil), cfg.ComboThresholds...)
	sort.SliceStable(thresholds, func(i, j int) bool {
		return thresholds[i].Count > thresholds[j].Count
	})

	e := &Engine{
		window:       cfg.ComboWindow(),
		thresholds:   thresholds,
		levelBonus:   cfg.LevelBonus,
		noDeathBonus: cfg.NoDeathBonus,
		store:        store,
		logger:       logger,
		combo:        Combo{Multiplier: 1},
	}
	high, err := store.LoadHighScore()
	if err != nil {
		logger.Warn("load high score", "err", err)
		high = 0
	}
	e.highScore = high
	return e
}

// AddFoodScore credits a meal worth base points at time now and returns the
// points earned. The combo is updated before this meal is counted, so the
// multiplier reflects the streak so far. Non-positive food refreshes the
// combo timer without extending the streak.
func (e *Engine) AddFoodScore(base int, now time.Duration) int {
	e.UpdateCombo(now)

	earned := base * e.combo.Multiplier
	e.score += earned

	if base > 0 {
		e.foodEaten++
		e.combo.Count++
	}
	e.combo.LastFood = now

	e.checkHighScore()
	return earned
}

// UpdateCombo resets the streak when the window since the last meal has
// passed, otherwise derives the multiplier from the current count.
func (e *Engine) UpdateCombo(now time.Duration) {
	if now-e.combo.LastFood > e.window {
		e.combo.Count = 0
		e.combo.Multiplier = 1
		return
	}
	e.combo.Multiplier = 1
	for _, th := range e.thresholds {
		if e.combo.Count >= th.Count {
			e.combo.Multiplier = th.Multiplier
			break
		}
	}
}

// AddLevelBonus credits the level completion bonus, plus the no-death bonus
// when noDeath is set.
func (e *Engine) AddLevelBonus(noDeath bool) int {
	bonus := e.levelBonus
	if noDeath {
		bonus += e.noDeathBonus
	}
	e.score += bonus
	e.checkHighScore()
	return bonus
}

// AddBonus credits a flat bonus such as an enemy kill.
func (e *Engine) AddBonus(points int) {
	e.score += points
	e.checkHighScore()
}

func (e *Engine) checkHighScore() {
	if e.score <= e.highScore {
		return
	}
	e.highScore = e.score
	if err := e.store.SaveHighScore(e.highScore); err != nil {
		e.logger.Warn("save high score", "score", e.highScore, "err", err)
	}
}

// Reset clears the match totals. The high score is kept.
func (e *Engine) Reset() {
	e.score = 0
	e.foodEaten = 0
	e.combo = Combo{Multiplier: 1}
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the best known score.
func (e *Engine) HighScore() int { return e.highScore }

// FoodEaten returns the number of positive meals this match.
func (e *Engine) FoodEaten() int { return e.foodEaten }

// Combo returns the combo state.
func (e *Engine) Combo() Combo { return e.combo }

// Multiplier returns the current combo multiplier.
func (e *Engine) Multiplier() int { return e.combo.Multiplier }
