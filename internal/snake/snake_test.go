package snake

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

var testGrid = core.Grid{Width: 800, Height: 600, CellSize: 20}

func TestNewBodyLayout(t *testing.T) {
	s := New(core.Point{X: 15, Y: 10}, core.DirRight, 3, Options{})

	expected := []core.Point{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Len() = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
	if !s.Alive() || s.IsAI() {
		t.Error("new player snake should be alive and not AI")
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		name     string
		facing   core.Direction
		input    core.Direction
		accepted bool
	}{
		{"right to left", core.DirRight, core.DirLeft, false},
		{"up to down", core.DirUp, core.DirDown, false},
		{"right to up", core.DirRight, core.DirUp, true},
		{"left to down", core.DirLeft, core.DirDown, true},
		{"same direction", core.DirDown, core.DirDown, true},
		{"none", core.DirRight, core.DirNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(core.Point{X: 10, Y: 10}, tc.facing, 3, Options{})
			got := s.SetDirection(tc.input)
			if got != tc.accepted {
				t.Errorf("SetDirection(%v) = %v, expected %v", tc.input, got, tc.accepted)
			}
			if !tc.accepted && s.NextDirection() != tc.facing {
				t.Errorf("rejected input changed nextDirection to %v", s.NextDirection())
			}
		})
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	s := New(core.Point{X: 10, Y: 10}, core.DirRight, 3, Options{})

	// Up is buffered but not committed; Left still reverses the committed Right.
	s.SetDirection(core.DirUp)
	if s.SetDirection(core.DirLeft) {
		t.Fatal("Left should be rejected while Right is committed")
	}
	if s.NextDirection() != core.DirUp {
		t.Errorf("NextDirection() = %v, expected up", s.NextDirection())
	}

	s.Advance()
	if s.Direction() != core.DirUp {
		t.Fatalf("Direction() = %v after advance, expected up", s.Direction())
	}
	if !s.SetDirection(core.DirLeft) {
		t.Error("Left should be accepted once Up is committed")
	}
}

func TestAdvanceMovesBody(t *testing.T) {
	s := New(core.Point{X: 5, Y: 5}, core.DirRight, 3, Options{})

	if !s.Advance() {
		t.Fatal("Advance() should report movement")
	}
	expected := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i, p := range s.Body() {
		if p != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, p, expected[i])
		}
	}

	s.SetDirection(core.DirDown)
	s.Advance()
	if s.Head() != (core.Point{X: 6, Y: 6}) {
		t.Errorf("Head() = %v, expected (6,6)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestDeadSnakeDoesNotMove(t *testing.T) {
	s := New(core.Point{X: 5, Y: 5}, core.DirRight, 3, Options{})
	s.Kill()

	if s.Advance() {
		t.Error("dead snake should not advance")
	}
	if s.Head() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("dead snake moved to %v", s.Head())
	}
}

func TestGrowImmediate(t *testing.T) {
	s := New(core.Point{X: 15, Y: 10}, core.DirRight, 3, Options{})

	s.Grow(1)
	if s.Len() != 4 || s.PendingGrowth() != 1 {
		t.Fatalf("right after Grow(1): Len() = %d pending = %d, expected 4 and 1", s.Len(), s.PendingGrowth())
	}
	s.Advance()
	if s.Len() != 5 || s.PendingGrowth() != 0 {
		t.Errorf("after advance: Len() = %d pending = %d, expected 5 and 0", s.Len(), s.PendingGrowth())
	}
	s.Advance()
	if s.Len() != 5 {
		t.Errorf("Len() = %d after a plain advance, expected 5", s.Len())
	}

	s.Grow(2)
	if s.Len() != 7 {
		t.Errorf("Len() = %d after Grow(2), expected 7", s.Len())
	}
	s.Advance()
	s.Advance()
	s.Advance()
	if s.Len() != 9 {
		t.Errorf("Len() = %d after Grow(2) settled, expected 9", s.Len())
	}

	s.Grow(0)
	s.Grow(-3)
	if s.Len() != 9 || s.PendingGrowth() != 0 {
		t.Errorf("non-positive Grow changed length to %d", s.Len())
	}
}

func TestGrowDeferred(t *testing.T) {
	s := New(core.Point{X: 15, Y: 10}, core.DirRight, 3, Options{Policy: GrowDeferred})

	s.Grow(2)
	if s.Len() != 3 {
		t.Fatalf("deferred Grow should not change length yet, got %d", s.Len())
	}
	if s.PendingGrowth() != 2 {
		t.Errorf("PendingGrowth() = %d, expected 2", s.PendingGrowth())
	}

	s.Advance()
	if s.Len() != 4 {
		t.Errorf("Len() = %d after first advance, expected 4", s.Len())
	}
	s.Advance()
	s.Advance()
	if s.Len() != 5 {
		t.Errorf("Len() = %d after growth consumed, expected 5", s.Len())
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("PendingGrowth() = %d, expected 0", s.PendingGrowth())
	}
}

func TestShrinkClampsToMinimum(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		shrink   int
		expected int
	}{
		{"within bounds", 6, 2, 4},
		{"to minimum", 5, 2, 3},
		{"below minimum", 4, 2, 3},
		{"already minimum", 3, 5, 3},
		{"zero", 5, 0, 5},
		{"negative", 5, -2, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(core.Point{X: 20, Y: 10}, core.DirRight, tc.length, Options{})
			s.Shrink(tc.shrink)
			if s.Len() != tc.expected {
				t.Errorf("Len() = %d, expected %d", s.Len(), tc.expected)
			}
		})
	}
}

func TestLengthInvariantUnderMovement(t *testing.T) {
	s := New(core.Point{X: 20, Y: 15}, core.DirRight, 3, Options{})
	turns := []core.Direction{core.DirUp, core.DirLeft, core.DirDown, core.DirRight}

	for i := 0; i < 200; i++ {
		if i%7 == 0 {
			s.SetDirection(turns[(i/7)%len(turns)])
		}
		s.Advance()
		if s.Len() != 3 {
			t.Fatalf("step %d: Len() = %d, expected 3", i, s.Len())
		}
	}
}

func TestSelfCollision(t *testing.T) {
	s := New(core.Point{X: 10, Y: 10}, core.DirRight, 5, Options{})
	if s.SelfCollision() {
		t.Fatal("straight snake should not self-collide")
	}

	// Curl into itself: up, left, down lands on the second body cell.
	for _, d := range []core.Direction{core.DirUp, core.DirLeft, core.DirDown} {
		s.SetDirection(d)
		s.Advance()
	}
	if !s.SelfCollision() {
		t.Errorf("expected self collision, body %v", s.Body())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name     string
		head     core.Point
		dir      core.Direction
		expected bool
	}{
		{"leaves right edge", core.Point{X: 39, Y: 5}, core.DirRight, true},
		{"leaves top edge", core.Point{X: 5, Y: 0}, core.DirUp, true},
		{"leaves left edge", core.Point{X: 0, Y: 5}, core.DirLeft, true},
		{"leaves bottom edge", core.Point{X: 5, Y: 29}, core.DirDown, true},
		{"stays inside", core.Point{X: 38, Y: 5}, core.DirRight, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.head, tc.dir, 3, Options{})
			s.Advance()
			if got := s.WallCollision(testGrid); got != tc.expected {
				t.Errorf("WallCollision() = %v, expected %v (head %v)", got, tc.expected, s.Head())
			}
		})
	}
}

func TestObstacleAndOtherSnakeCollision(t *testing.T) {
	s := New(core.Point{X: 10, Y: 10}, core.DirRight, 3, Options{})
	obstacles := core.NewPointSet([]core.Point{{X: 11, Y: 10}})

	if s.ObstacleCollision(obstacles) {
		t.Error("no obstacle under head yet")
	}
	s.Advance()
	if !s.ObstacleCollision(obstacles) {
		t.Error("head on obstacle should collide")
	}

	enemy := New(core.Point{X: 12, Y: 12}, core.DirUp, 3, Options{AI: true})
	// enemy body: (12,12) (12,13) (12,14)
	if s.CollidesWith(enemy) {
		t.Error("should not collide with distant enemy")
	}
	s.SetDirection(core.DirDown)
	s.Advance()
	s.SetDirection(core.DirRight)
	s.Advance() // head (12,11)
	s.SetDirection(core.DirDown)
	s.Advance() // head (12,12)
	if !s.CollidesWith(enemy) {
		t.Errorf("head %v should collide with enemy body %v", s.Head(), enemy.Body())
	}
	if s.CollidesWith(nil) {
		t.Error("nil snake should never collide")
	}
}

func TestTeleportMovesHeadOnly(t *testing.T) {
	s := New(core.Point{X: 10, Y: 15}, core.DirRight, 3, Options{})
	s.Teleport(core.Point{X: 30, Y: 15})

	body := s.Body()
	if body[0] != (core.Point{X: 30, Y: 15}) {
		t.Errorf("head = %v, expected (30,15)", body[0])
	}
	if body[1] != (core.Point{X: 9, Y: 15}) || s.Len() != 3 {
		t.Errorf("teleport changed the rest of the body: %v", body)
	}

	s.Advance()
	if s.Head() != (core.Point{X: 31, Y: 15}) {
		t.Errorf("snake should continue from the teleport target, head %v", s.Head())
	}
}

func TestParseGrowthPolicy(t *testing.T) {
	tests := []struct {
		in       string
		expected GrowthPolicy
		wantErr  bool
	}{
		{"immediate", GrowImmediate, false},
		{"", GrowImmediate, false},
		{"deferred", GrowDeferred, false},
		{"eventually", GrowImmediate, true},
	}
	for _, tc := range tests {
		got, err := ParseGrowthPolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseGrowthPolicy(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseGrowthPolicy(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
