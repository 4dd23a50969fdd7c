package game

import (
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/food"
)

// Snapshot captures the match state for determinism testing and the HUD.
type Snapshot struct {
	Ticks       uint64
	Moves       uint64
	Mode        string
	Level       int
	Score       int
	HighScore   int
	FoodEaten   int
	Combo       int
	Multiplier  int
	SpeedMS     float64 // move interval before effects
	EffectiveMS float64 // move interval after effects
	Head        core.Point
	Dir         core.Direction
	Length      int
	EnemyAlive  bool
	EnemyLength int
	Food        []food.Item
	Effects     int
	TimeLeft    time.Duration
	Timed       bool
	Outcome     Outcome
	Cause       Cause
}

// Snapshot returns the current match snapshot.
func (l *Loop) Snapshot() Snapshot {
	combo := l.score.Combo()
	left, timed := l.TimeLeft()
	s := Snapshot{
		Ticks:       l.ticks,
		Moves:       l.moves,
		Mode:        l.mode,
		Level:       l.level.Number,
		Score:       l.score.Score(),
		HighScore:   l.score.HighScore(),
		FoodEaten:   l.score.FoodEaten(),
		Combo:       combo.Count,
		Multiplier:  combo.Multiplier,
		SpeedMS:     l.speed,
		EffectiveMS: l.effective,
		Head:        l.player.Head(),
		Dir:         l.player.Direction(),
		Length:      l.player.Len(),
		Food:        l.food.Items(),
		Effects:     len(l.food.ActiveEffects()),
		TimeLeft:    left,
		Timed:       timed,
		Outcome:     l.outcome,
		Cause:       l.cause,
	}
	if l.enemy != nil {
		s.EnemyAlive = l.enemy.Alive()
		s.EnemyLength = l.enemy.Len()
	}
	return s
}

// Result summarizes a finished (or abandoned) match for storage.
type Result struct {
	MatchID    string
	Mode       string
	StartLevel int
	Level      int
	Cleared    int // levels completed
	Score      int
	FoodEaten  int
	Outcome    Outcome
	Cause      Cause
	Elapsed    time.Duration
}

// Result returns the match summary.
func (l *Loop) Result() Result {
	return Result{
		MatchID:    l.matchID,
		Mode:       l.mode,
		StartLevel: l.started,
		Level:      l.level.Number,
		Cleared:    l.cleared,
		Score:      l.score.Score(),
		FoodEaten:  l.score.FoodEaten(),
		Outcome:    l.outcome,
		Cause:      l.cause,
		Elapsed:    l.now,
	}
}
