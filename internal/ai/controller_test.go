package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

var testGrid = core.Grid{Width: 800, Height: 600, CellSize: 20}

func newController(aggression float64) *Controller {
	cfg := config.Default().AI
	cfg.Aggression = aggression
	return New(cfg, testGrid, rand.New(rand.NewSource(1)))
}

func TestThinkInterval(t *testing.T) {
	c := newController(0)
	self := snake.New(core.Point{X: 10, Y: 10}, core.DirRight, 3, snake.Options{AI: true})
	food := core.Point{X: 20, Y: 10}

	steps := []struct {
		dt      time.Duration
		decided bool
	}{
		{100 * time.Millisecond, false},
		{99 * time.Millisecond, false},
		{1 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{300 * time.Millisecond, true},
		{16 * time.Millisecond, false},
	}
	for i, s := range steps {
		if got := c.Update(s.dt, self, nil, food, true, nil); got != s.decided {
			t.Errorf("step %d: Update(%v) = %v, expected %v", i, s.dt, got, s.decided)
		}
	}
	if c.Decisions() != 2 {
		t.Errorf("Decisions() = %d, expected 2", c.Decisions())
	}
}

func TestDeadSnakeDoesNotThink(t *testing.T) {
	c := newController(0)
	self := snake.New(core.Point{X: 10, Y: 10}, core.DirRight, 3, snake.Options{AI: true})
	self.Kill()
	if c.Update(time.Second, self, nil, core.Point{}, true, nil) {
		t.Error("dead snake should not make decisions")
	}
}

func TestMoveTowardPrefersLargerAxis(t *testing.T) {
	tests := []struct {
		name     string
		facing   core.Direction
		target   core.Point
		expected core.Direction
	}{
		{"food three cells right", core.DirUp, core.Point{X: 13, Y: 10}, core.DirRight},
		{"mostly down", core.DirRight, core.Point{X: 12, Y: 16}, core.DirDown},
		{"mostly left", core.DirUp, core.Point{X: 4, Y: 8}, core.DirLeft},
		{"tie keeps horizontal first", core.DirUp, core.Point{X: 13, Y: 7}, core.DirRight},
		{"target behind keeps heading", core.DirRight, core.Point{X: 5, Y: 10}, core.DirRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(0)
			self := snake.New(core.Point{X: 10, Y: 10}, tc.facing, 3, snake.Options{AI: true})
			if !c.MoveToward(self, tc.target, nil) {
				t.Fatal("MoveToward should find a move on an open board")
			}
			if self.NextDirection() != tc.expected {
				t.Errorf("NextDirection() = %v, expected %v", self.NextDirection(), tc.expected)
			}
		})
	}
}

func TestMoveTowardAvoidsObstacle(t *testing.T) {
	c := newController(0)
	self := snake.New(core.Point{X: 10, Y: 10}, core.DirRight, 3, snake.Options{AI: true})
	obstacles := core.NewPointSet([]core.Point{{X: 11, Y: 10}})

	if !c.MoveToward(self, core.Point{X: 13, Y: 10}, obstacles) {
		t.Fatal("expected a fallback move")
	}
	d := self.NextDirection()
	if d != core.DirUp && d != core.DirDown {
		t.Errorf("NextDirection() = %v, expected a sidestep up or down", d)
	}
}

func TestMoveTowardAvoidsOwnBody(t *testing.T) {
	c := newController(0)
	// Body (10,10) (10,11) (10,12) (10,13) (10,14), facing up.
	self := snake.New(core.Point{X: 10, Y: 10}, core.DirUp, 5, snake.Options{AI: true})
	// Turn right then down so the body sits below-left of the head.
	self.SetDirection(core.DirRight)
	self.Advance() // head (11,10)
	self.SetDirection(core.DirDown)
	self.Advance() // head (11,11), body includes (10,11)

	// Target far left: left is (10,11), our own body.
	if !c.MoveToward(self, core.Point{X: 0, Y: 11}, nil) {
		t.Fatal("expected a move")
	}
	if self.NextDirection() == core.DirLeft {
		t.Error("AI steered into its own body")
	}
}

func TestTrappedSnakeKeepsDirection(t *testing.T) {
	c := newController(0)
	// Body (0,0) (1,0) (2,0) facing left into the corner.
	self := snake.New(core.Point{X: 0, Y: 0}, core.DirLeft, 3, snake.Options{AI: true})
	obstacles := core.NewPointSet([]core.Point{{X: 0, Y: 1}})

	if c.MoveToward(self, core.Point{X: 20, Y: 20}, obstacles) {
		t.Error("no safe move exists, MoveToward should report false")
	}
	if self.NextDirection() != core.DirLeft {
		t.Errorf("NextDirection() = %v, expected unchanged left", self.NextDirection())
	}
}

func TestDecisionTargets(t *testing.T) {
	self := snake.New(core.Point{X: 10, Y: 10}, core.DirRight, 3, snake.Options{AI: true})
	player := snake.New(core.Point{X: 30, Y: 20}, core.DirRight, 3, snake.Options{})
	food := core.Point{X: 5, Y: 5}

	aggressive := newController(1)
	aggressive.Update(time.Second, self, player, food, true, nil)
	if p, kind := aggressive.LastTarget(); kind != TargetPlayer || p != player.Head() {
		t.Errorf("aggression 1 target = %v %v, expected player head", p, kind)
	}

	passive := newController(0)
	passive.Update(time.Second, self, player, food, true, nil)
	if p, kind := passive.LastTarget(); kind != TargetFood || p != food {
		t.Errorf("aggression 0 target = %v %v, expected food", p, kind)
	}

	// No player to chase and no food: random walk.
	lonely := newController(1)
	lonely.Update(time.Second, self, nil, core.Point{}, false, nil)
	if _, kind := lonely.LastTarget(); kind != TargetRandom {
		t.Errorf("target = %v, expected random", kind)
	}
	if self.NextDirection() == core.DirLeft {
		t.Error("random move reversed the snake")
	}
}

func TestRandomMoveNeverUnsafe(t *testing.T) {
	c := New(config.Default().AI, testGrid, rand.New(rand.NewSource(99)))
	obstacles := core.NewPointSet([]core.Point{{X: 11, Y: 10}, {X: 10, Y: 9}})

	for i := 0; i < 50; i++ {
		self := snake.New(core.Point{X: 10, Y: 10}, core.DirRight, 3, snake.Options{AI: true})
		if !c.RandomMove(self, obstacles) {
			t.Fatal("down is always available")
		}
		if self.NextDirection() != core.DirDown {
			t.Fatalf("NextDirection() = %v, only down is safe", self.NextDirection())
		}
	}
}
