// Package ai steers a snake on a fixed think interval: chase the player or
// the first food, step along the larger axis first, and never reverse or
// step onto a wall, obstacle or its own body.
package ai

import (
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

// Target says what the last decision aimed for.
type Target int

const (
	TargetNone Target = iota
	TargetPlayer
	TargetFood
	TargetRandom
)

func (t Target) String() string {
	switch t {
	case TargetPlayer:
		return "player"
	case TargetFood:
		return "food"
	case TargetRandom:
		return "random"
	default:
		return "none"
	}
}

// Controller drives one snake.
type Controller struct {
	grid       core.Grid
	rng        *rand.Rand
	interval   time.Duration
	aggression float64

	timer      time.Duration
	target     core.Point
	targetKind Target
	decisions  int
}

// New creates a controller.
func New(cfg config.AIConfig, grid core.Grid, rng *rand.Rand) *Controller {
	return &Controller{
		grid:       grid,
		rng:        rng,
		interval:   cfg.ThinkInterval(),
		aggression: cfg.Aggression,
	}
}

// Update accumulates dt and makes one decision each time the think interval
// is reached. player may be nil, in which case only food is chased.
// Returns whether a decision was made.
func (c *Controller) Update(dt time.Duration, self, player *snake.Snake, food core.Point, hasFood bool, obstacles core.PointSet) bool {
	if self == nil || !self.Alive() {
		return false
	}
	c.timer += dt
	if c.timer < c.interval {
		return false
	}
	c.timer = 0
	c.decide(self, player, food, hasFood, obstacles)
	c.decisions++
	return true
}

func (c *Controller) decide(self, player *snake.Snake, food core.Point, hasFood bool, obstacles core.PointSet) {
	chasePlayer := c.rng.Float64() < c.aggression

	switch {
	case chasePlayer && player != nil:
		c.target, c.targetKind = player.Head(), TargetPlayer
	case hasFood:
		c.target, c.targetKind = food, TargetFood
	default:
		c.targetKind = TargetRandom
		c.RandomMove(self, obstacles)
		return
	}
	c.MoveToward(self, c.target, obstacles)
}

type candidate struct {
	dx, dy   int
	priority int
}

// MoveToward steers self one step toward target. Moves along the axis with
// the larger offset are tried first and moves away from the target last.
// Falls back to RandomMove when no ranked move is safe. Returns whether a
// direction was set.
func (c *Controller) MoveToward(self *snake.Snake, target core.Point, obstacles core.PointSet) bool {
	head := self.Head()
	dx := target.X - head.X
	dy := target.Y - head.Y

	moves := []candidate{
		{dx: core.Sign(dx), dy: 0, priority: core.Abs(dx)},
		{dx: 0, dy: core.Sign(dy), priority: core.Abs(dy)},
		{dx: -core.Sign(dx), dy: 0, priority: 0},
		{dx: 0, dy: -core.Sign(dy), priority: 0},
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].priority > moves[j].priority
	})

	for _, m := range moves {
		if m.dx == 0 && m.dy == 0 {
			continue
		}
		if c.trySteer(self, core.DirectionOf(m.dx, m.dy), obstacles) {
			return true
		}
	}
	return c.RandomMove(self, obstacles)
}

// RandomMove tries the four directions in random order and takes the first
// safe one. If none is safe the snake keeps its direction.
func (c *Controller) RandomMove(self *snake.Snake, obstacles core.PointSet) bool {
	dirs := core.Directions
	c.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		if c.trySteer(self, d, obstacles) {
			return true
		}
	}
	return false
}

func (c *Controller) trySteer(self *snake.Snake, d core.Direction, obstacles core.PointSet) bool {
	if d == self.Direction().Opposite() {
		return false
	}
	next := self.Head().Add(d)
	if !c.IsSafe(self, next, obstacles) {
		return false
	}
	return self.SetDirection(d)
}

// IsSafe reports whether p is in bounds, not an obstacle and not part of self.
func (c *Controller) IsSafe(self *snake.Snake, p core.Point, obstacles core.PointSet) bool {
	return c.grid.IsPositionValid(p, obstacles) && !self.Occupies(p)
}

// Reset clears the think timer and decision state.
func (c *Controller) Reset() {
	c.timer = 0
	c.target = core.Point{}
	c.targetKind = TargetNone
	c.decisions = 0
}

// LastTarget returns the cell and kind of the last decision.
func (c *Controller) LastTarget() (core.Point, Target) {
	return c.target, c.targetKind
}

// Decisions returns how many decisions have been made.
func (c *Controller) Decisions() int { return c.decisions }
