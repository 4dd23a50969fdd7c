// Package snake implements the snake body state machine: direction
// buffering, movement, growth and shrink, and pure collision queries.
// A snake never decides its own death; the loop runs the queries and calls Kill.
package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// GrowthPolicy selects when Grow lengthens the body.
type GrowthPolicy int

const (
	// GrowImmediate duplicates the tail cell at Grow time and also skips
	// one tail removal per unit on later advances.
	GrowImmediate GrowthPolicy = iota
	// GrowDeferred skips one tail removal per unit on later advances.
	GrowDeferred
)

// ParseGrowthPolicy maps a configuration string to a policy.
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch s {
	case "", "immediate":
		return GrowImmediate, nil
	case "deferred":
		return GrowDeferred, nil
	default:
		return GrowImmediate, fmt.Errorf("snake: unknown growth policy %q", s)
	}
}

func (p GrowthPolicy) String() string {
	if p == GrowDeferred {
		return "deferred"
	}
	return "immediate"
}

// DefaultMinLength is the shortest body Shrink leaves behind.
const DefaultMinLength = 3

// Options configures a new snake.
type Options struct {
	AI        bool // Driven by an AI controller rather than player input
	Policy    GrowthPolicy
	MinLength int // 0 means DefaultMinLength
}

// Snake is an ordered body of cells, head at index 0.
type Snake struct {
	body          []core.Point
	direction     core.Direction // Committed, used by the next Advance
	nextDirection core.Direction // Buffered input
	alive         bool
	ai            bool
	pendingGrowth int
	policy        GrowthPolicy
	minLength     int
}

// New creates a live snake with its head at head, facing dir, trailing
// length-1 cells behind it.
func New(head core.Point, dir core.Direction, length int, opts Options) *Snake {
	if dir == core.DirNone {
		dir = core.DirRight
	}
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	length = max(length, 1)

	body := make([]core.Point, 0, length+8)
	back := dir.Opposite()
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}

	return &Snake{
		body:          body,
		direction:     dir,
		nextDirection: dir,
		alive:         true,
		ai:            opts.AI,
		policy:        opts.Policy,
		minLength:     minLen,
	}
}

// SetDirection buffers a direction for the next Advance. Reversing the
// committed direction is ignored. Returns whether the input was accepted.
func (s *Snake) SetDirection(d core.Direction) bool {
	if d == core.DirNone || d == s.direction.Opposite() {
		return false
	}
	s.nextDirection = d
	return true
}

// Advance commits the buffered direction and moves one cell.
// Returns false when the snake is dead and nothing moved.
func (s *Snake) Advance() bool {
	if !s.alive || len(s.body) == 0 {
		return false
	}
	s.direction = s.nextDirection
	newHead := s.body[0].Add(s.direction)

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return true
}

// Grow lengthens the snake by n cells according to its growth policy.
func (s *Snake) Grow(n int) {
	if n <= 0 || len(s.body) == 0 {
		return
	}
	if s.policy == GrowDeferred {
		s.pendingGrowth += n
		return
	}
	tail := s.body[len(s.body)-1]
	for i := 0; i < n; i++ {
		s.body = append(s.body, tail)
	}
	s.pendingGrowth += n
}

// Shrink removes up to n tail cells, never going below the minimum length.
func (s *Snake) Shrink(n int) {
	if n <= 0 {
		return
	}
	newLen := max(len(s.body)-n, s.minLength)
	if newLen < len(s.body) {
		s.body = s.body[:newLen]
	}
}

// Teleport moves the head cell to p without touching the rest of the body.
func (s *Snake) Teleport(p core.Point) {
	if len(s.body) > 0 {
		s.body[0] = p
	}
}

// Kill marks the snake dead. Dead snakes never move again.
func (s *Snake) Kill() {
	s.alive = false
}

// SelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) SelfCollision() bool {
	if len(s.body) == 0 {
		return false
	}
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// WallCollision reports whether the head left the grid.
func (s *Snake) WallCollision(g core.Grid) bool {
	return len(s.body) > 0 && !g.InBounds(s.body[0])
}

// ObstacleCollision reports whether the head sits on an obstacle.
func (s *Snake) ObstacleCollision(obstacles core.PointSet) bool {
	return len(s.body) > 0 && obstacles.Has(s.body[0])
}

// CollidesWith reports whether the head overlaps any cell of other.
func (s *Snake) CollidesWith(other *Snake) bool {
	if other == nil || len(s.body) == 0 {
		return false
	}
	if other == s {
		return s.SelfCollision()
	}
	return other.Occupies(s.body[0])
}

// Occupies reports whether p is any cell of the body.
func (s *Snake) Occupies(p core.Point) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	if len(s.body) == 0 {
		return core.Point{}
	}
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the body length.
func (s *Snake) Len() int { return len(s.body) }

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction { return s.direction }

// NextDirection returns the buffered direction.
func (s *Snake) NextDirection() core.Direction { return s.nextDirection }

// Alive reports whether the snake is still in play.
func (s *Snake) Alive() bool { return s.alive }

// IsAI reports whether the snake is AI-controlled.
func (s *Snake) IsAI() bool { return s.ai }

// PendingGrowth returns the tail removals still to be skipped.
func (s *Snake) PendingGrowth() int { return s.pendingGrowth }
