package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/ai"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// Autopilot steers the player with the same controller the enemy uses,
// deciding every frame and always chasing food.
type Autopilot struct {
	ctrl *ai.Controller
}

// NewAutopilot creates an autopilot for matches on grid.
func NewAutopilot(grid core.Grid, seed int64) *Autopilot {
	return &Autopilot{
		ctrl: ai.New(config.AIConfig{}, grid, rand.New(rand.NewSource(seed))),
	}
}

// Steer picks the player's next direction for l.
func (a *Autopilot) Steer(l *Loop, delta time.Duration) {
	player := l.Player()
	if player == nil || !player.Alive() {
		return
	}
	blocked := core.NewPointSet(l.Level().Obstacles())
	if e := l.Enemy(); e != nil && e.Alive() {
		blocked.Add(e.Body()...)
	}
	target, hasFood := l.food.First()
	a.ctrl.Update(delta, player, nil, target.Pos, hasFood, blocked)
}

// Simulate runs l headless under the autopilot until the match ends, the
// simulated time reaches limit or ctx is cancelled. frame is the tick length.
func Simulate(ctx context.Context, l *Loop, pilot *Autopilot, frame, limit time.Duration) Result {
	for l.Outcome() == OutcomeContinue && l.Elapsed() < limit {
		if l.ticks%1024 == 0 && ctx.Err() != nil {
			break
		}
		pilot.Steer(l, frame)
		l.AdvanceTick(frame, core.DirNone)
	}
	return l.Result()
}
