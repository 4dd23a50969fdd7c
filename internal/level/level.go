// Package level defines the level contract the loop plays on: static
// obstacles, portals, and optional per-level capabilities such as moving
// obstacles or a boss countdown. Capabilities are function fields that are
// nil when a level does not have them.
package level

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// ErrInvalidLevel is returned for level numbers outside 1..Count.
var ErrInvalidLevel = errors.New("level: invalid level")

// Count is the number of levels in the catalog.
const Count = 10

// Portal is a teleport cell linked to another portal by index.
type Portal struct {
	Pos      core.Point
	LinkedTo int
}

// MovingObstacle is a single cell that patrols with a fixed velocity.
type MovingObstacle struct {
	Pos    core.Point
	VX, VY int
}

// BossBlock is a 3x3 obstacle around a fractional centre.
type BossBlock struct {
	CX, CY float64
	VX, VY float64
}

// Cells returns the nine cells covered by the block.
func (b BossBlock) Cells() []core.Point {
	cells := make([]core.Point, 0, 9)
	for i := 0; i < 9; i++ {
		dx := float64(i%3 - 1)
		dy := float64(i/3 - 1)
		cells = append(cells, core.Point{X: floorInt(b.CX + dx), Y: floorInt(b.CY + dy)})
	}
	return cells
}

// Options carries the tunables some levels need.
type Options struct {
	Boss config.BossConfig
}

// Contract is one level as played. It is built fresh from the catalog for
// every level start; the catalog itself is never mutated.
type Contract struct {
	Number          int
	Name            string
	Description     string
	SpeedMultiplier float64 // divides the base move interval
	HasAI           bool
	IsBossLevel     bool
	DarkMode        bool

	// UpdateMovingObstacles advances patrolling obstacles one step.
	UpdateMovingObstacles func()
	// UpdateBossObstacles moves the boss blocks by dt.
	UpdateBossObstacles func(dt time.Duration)
	// CheckPortalCollision returns the linked portal cell when head is on a portal.
	CheckPortalCollision func(head core.Point) (core.Point, bool)
	// UpdateTimer counts the level clock down by dt and returns what is left.
	UpdateTimer func(dt time.Duration) time.Duration

	grid      core.Grid
	opts      Options
	build     func(c *Contract, rng *rand.Rand, reserved core.PointSet)
	static    []core.Point
	staticSet core.PointSet
	portals   []Portal
	moving    []MovingObstacle
	bosses    []BossBlock
	remaining time.Duration
}

// Initialize builds the level's obstacles and portals on grid and starts
// the level clock. Randomly placed obstacles avoid reserved cells. Calling
// it again rebuilds the level.
func (c *Contract) Initialize(rng *rand.Rand, grid core.Grid, reserved core.PointSet) {
	c.grid = grid
	c.static = nil
	c.staticSet = make(core.PointSet)
	c.portals = nil
	c.moving = nil
	c.bosses = nil
	c.remaining = 0
	if c.IsBossLevel {
		c.remaining = c.opts.Boss.Duration()
	}
	if c.build != nil {
		c.build(c, rng, reserved)
	}
}

// addStatic records an in-bounds obstacle once.
func (c *Contract) addStatic(p core.Point) {
	if !c.grid.InBounds(p) || c.staticSet.Has(p) {
		return
	}
	c.static = append(c.static, p)
	c.staticSet.Add(p)
}

// Obstacles returns every cell that currently blocks movement: static
// obstacles, then moving obstacles, then boss block cells.
func (c *Contract) Obstacles() []core.Point {
	out := make([]core.Point, 0, len(c.static)+len(c.moving)+9*len(c.bosses))
	out = append(out, c.static...)
	for _, m := range c.moving {
		out = append(out, m.Pos)
	}
	for _, b := range c.bosses {
		out = append(out, b.Cells()...)
	}
	return out
}

// ObstacleSet returns Obstacles as a set.
func (c *Contract) ObstacleSet() core.PointSet {
	return core.NewPointSet(c.Obstacles())
}

// StaticObstacles returns the obstacles that never move.
func (c *Contract) StaticObstacles() []core.Point {
	out := make([]core.Point, len(c.static))
	copy(out, c.static)
	return out
}

// MovingObstacles returns the patrolling obstacles.
func (c *Contract) MovingObstacles() []MovingObstacle {
	out := make([]MovingObstacle, len(c.moving))
	copy(out, c.moving)
	return out
}

// BossBlocks returns the boss blocks.
func (c *Contract) BossBlocks() []BossBlock {
	out := make([]BossBlock, len(c.bosses))
	copy(out, c.bosses)
	return out
}

// Portals returns the level's portals.
func (c *Contract) Portals() []Portal {
	out := make([]Portal, len(c.portals))
	copy(out, c.portals)
	return out
}

// PortalCells returns the portal cells.
func (c *Contract) PortalCells() []core.Point {
	out := make([]core.Point, len(c.portals))
	for i, p := range c.portals {
		out[i] = p.Pos
	}
	return out
}

// TimeRemaining returns the level clock for timed levels.
func (c *Contract) TimeRemaining() (time.Duration, bool) {
	if c.UpdateTimer == nil {
		return 0, false
	}
	return c.remaining, true
}

// Grid returns the grid the level was initialized on.
func (c *Contract) Grid() core.Grid { return c.grid }

// enablePortals installs the teleport capability.
func (c *Contract) enablePortals() {
	c.CheckPortalCollision = func(head core.Point) (core.Point, bool) {
		for _, p := range c.portals {
			if p.Pos == head {
				return c.portals[p.LinkedTo].Pos, true
			}
		}
		return core.Point{}, false
	}
}

// enableMovingObstacles installs the patrol capability. Obstacles bounce by
// flipping velocity when they reach or pass a grid edge.
func (c *Contract) enableMovingObstacles() {
	c.UpdateMovingObstacles = func() {
		maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
		for i := range c.moving {
			m := &c.moving[i]
			m.Pos.X += m.VX
			m.Pos.Y += m.VY
			if m.Pos.X <= 0 || m.Pos.X >= maxX-1 {
				m.VX = -m.VX
				m.Pos.X = core.Clamp(m.Pos.X, 0, maxX-1)
			}
			if m.Pos.Y <= 0 || m.Pos.Y >= maxY-1 {
				m.VY = -m.VY
				m.Pos.Y = core.Clamp(m.Pos.Y, 0, maxY-1)
			}
		}
	}
}

// enableBoss installs the boss block movement and countdown.
func (c *Contract) enableBoss() {
	speed := c.opts.Boss.Speed
	c.UpdateBossObstacles = func(dt time.Duration) {
		lo := 2.0
		hiX := float64(c.grid.MaxX() - 3)
		hiY := float64(c.grid.MaxY() - 3)
		step := speed * dt.Seconds()
		for i := range c.bosses {
			b := &c.bosses[i]
			b.CX += b.VX * step
			b.CY += b.VY * step
			if b.CX <= lo || b.CX >= hiX {
				b.VX = -b.VX
				b.CX = core.Clamp(b.CX, lo, hiX)
			}
			if b.CY <= lo || b.CY >= hiY {
				b.VY = -b.VY
				b.CY = core.Clamp(b.CY, lo, hiY)
			}
		}
	}
	c.UpdateTimer = func(dt time.Duration) time.Duration {
		c.remaining -= dt
		return c.remaining
	}
}

func floorInt(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}
