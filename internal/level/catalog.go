package level

import (
	"math/rand"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Info describes a catalog entry without building it.
type Info struct {
	Number          int
	Name            string
	Description     string
	SpeedMultiplier float64
	HasAI           bool
	IsBossLevel     bool
	DarkMode        bool
	Portals         bool
	MovingObstacles bool
}

type definition struct {
	name    string
	desc    string
	speed   float64
	hasAI   bool
	boss    bool
	dark    bool
	portals bool
	moving  bool
	build   func(c *Contract, rng *rand.Rand, reserved core.PointSet)
}

// Settings shared with the tests.
const (
	cornerSize     = 3
	tinyBorder     = 8
	portalWallHalf = 5
	enemyBarOffset = 5
	enemyBarHalf   = 8
	enemyBarGap    = 2
	caveRocks      = 35
	diamondMovers  = 3
)

var catalog = [Count]definition{
	{name: "Classic", desc: "No obstacles - Learn the basics", speed: 1.0},
	{name: "Wall Corners", desc: "Avoid the corner obstacles", speed: 1.1, build: buildCorners},
	{name: "Cross Maze", desc: "Navigate the X-shaped obstacles", speed: 1.2, build: buildCross},
	{name: "Spiral Arena", desc: "Follow the spiral path", speed: 1.3, build: buildSpiral},
	{name: "Diamond Box", desc: "Watch out for moving obstacles!", speed: 1.4, moving: true, build: buildDiamond},
	{name: "Tiny Grid", desc: "Limited space - Expert mode!", speed: 1.5, build: buildTiny},
	{name: "Teleport Portals", desc: "Use portals to teleport!", speed: 1.3, portals: true, build: buildPortals},
	{name: "Enemy Snake", desc: "Compete against AI snake!", speed: 1.2, hasAI: true, build: buildEnemyBars},
	{name: "Cave Adventure", desc: "Explore the mysterious dungeon!", speed: 1.1, dark: true, build: buildCave},
	{name: "Boss Level", desc: "Survive 90 seconds!", speed: 1.6, boss: true, build: buildBoss},
}

// Catalog lists every level in order.
func Catalog() []Info {
	out := make([]Info, 0, Count)
	for i, d := range catalog {
		out = append(out, Info{
			Number:          i + 1,
			Name:            d.name,
			Description:     d.desc,
			SpeedMultiplier: d.speed,
			HasAI:           d.hasAI,
			IsBossLevel:     d.boss,
			DarkMode:        d.dark,
			Portals:         d.portals,
			MovingObstacles: d.moving,
		})
	}
	return out
}

// New returns a fresh, uninitialized contract for level n (1-based).
func New(n int, opts Options) (*Contract, error) {
	if n < 1 || n > Count {
		return nil, ErrInvalidLevel
	}
	d := catalog[n-1]
	c := &Contract{
		Number:          n,
		Name:            d.name,
		Description:     d.desc,
		SpeedMultiplier: d.speed,
		HasAI:           d.hasAI,
		IsBossLevel:     d.boss,
		DarkMode:        d.dark,
		opts:            opts,
		build:           d.build,
	}
	if d.portals {
		c.enablePortals()
	}
	if d.moving {
		c.enableMovingObstacles()
	}
	if d.boss {
		c.enableBoss()
	}
	return c, nil
}

func buildCorners(c *Contract, _ *rand.Rand, _ core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	for _, ox := range []int{0, maxX - cornerSize} {
		for _, oy := range []int{0, maxY - cornerSize} {
			for x := ox; x < ox+cornerSize; x++ {
				for y := oy; y < oy+cornerSize; y++ {
					c.addStatic(core.Point{X: x, Y: y})
				}
			}
		}
	}
}

// buildCross draws both diagonals through the centre.
func buildCross(c *Contract, _ *rand.Rand, _ core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	center := c.grid.Center()
	length := (min(maxX, maxY) + 1) / 2
	for i := 0; i < length; i++ {
		c.addStatic(core.Point{X: center.X - i, Y: center.Y - i})
		c.addStatic(core.Point{X: center.X + i, Y: center.Y + i})
		c.addStatic(core.Point{X: center.X + i, Y: center.Y - i})
		c.addStatic(core.Point{X: center.X - i, Y: center.Y + i})
	}
}

// buildSpiral walks outward from the centre, turning clockwise after each
// segment and lengthening every second segment.
func buildSpiral(c *Contract, _ *rand.Rand, _ core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	p := c.grid.Center()
	dx, dy := 0, -1
	segLen, passed := 1, 0
	steps := 2 * min(maxX, maxY)
	for i := 0; i < steps; i++ {
		c.addStatic(p)
		p.X += dx
		p.Y += dy
		passed++
		if passed == segLen {
			passed = 0
			dx, dy = -dy, dx
			if dy == 0 {
				segLen++
			}
		}
	}
}

// buildDiamond draws the diamond outline and drops the patrolling obstacles.
func buildDiamond(c *Contract, rng *rand.Rand, reserved core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	center := c.grid.Center()
	size := min(maxX, maxY) / 3
	for i := 0; i < size; i++ {
		c.addStatic(core.Point{X: center.X - i, Y: center.Y - size + i})
		c.addStatic(core.Point{X: center.X + i, Y: center.Y - size + i})
		c.addStatic(core.Point{X: center.X - i, Y: center.Y + size - i})
		c.addStatic(core.Point{X: center.X + i, Y: center.Y + size - i})
	}

	exclude := core.NewPointSet(c.static)
	for p := range reserved {
		exclude.Add(p)
	}
	for i := 0; i < diamondMovers; i++ {
		pos := c.grid.RandomPosition(rng, exclude)
		exclude.Add(pos)
		c.moving = append(c.moving, MovingObstacle{
			Pos: pos,
			VX:  unitStep(rng),
			VY:  unitStep(rng),
		})
	}
}

// buildTiny walls off everything but a central pocket.
func buildTiny(c *Contract, _ *rand.Rand, _ core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	for x := 0; x < maxX; x++ {
		for y := 0; y < maxY; y++ {
			if x < tinyBorder || x >= maxX-tinyBorder || y < tinyBorder || y >= maxY-tinyBorder {
				c.addStatic(core.Point{X: x, Y: y})
			}
		}
	}
}

// buildPortals splits the board with a wall that has a single gap, and links
// a portal on each side.
func buildPortals(c *Contract, _ *rand.Rand, _ core.PointSet) {
	maxX := c.grid.MaxX()
	center := c.grid.Center()
	for y := center.Y - portalWallHalf; y <= center.Y+portalWallHalf; y++ {
		if y != center.Y {
			c.addStatic(core.Point{X: center.X, Y: y})
		}
	}
	c.portals = []Portal{
		{Pos: core.Point{X: maxX / 4, Y: center.Y}, LinkedTo: 1},
		{Pos: core.Point{X: maxX * 3 / 4, Y: center.Y}, LinkedTo: 0},
	}
}

// buildEnemyBars adds two horizontal bars with a gap in the middle.
func buildEnemyBars(c *Contract, _ *rand.Rand, _ core.PointSet) {
	center := c.grid.Center()
	for x := center.X - enemyBarHalf; x <= center.X+enemyBarHalf; x++ {
		if core.Abs(x-center.X) > enemyBarGap {
			c.addStatic(core.Point{X: x, Y: center.Y - enemyBarOffset})
			c.addStatic(core.Point{X: x, Y: center.Y + enemyBarOffset})
		}
	}
}

// buildCave scatters rocks at random.
func buildCave(c *Contract, rng *rand.Rand, reserved core.PointSet) {
	exclude := make(core.PointSet, caveRocks+len(reserved))
	for p := range reserved {
		exclude.Add(p)
	}
	for i := 0; i < caveRocks; i++ {
		pos := c.grid.RandomPosition(rng, exclude)
		exclude.Add(pos)
		c.addStatic(pos)
	}
}

// buildBoss walls the border and places the boss blocks. Block centres keep
// one cell away from reserved cells so no block covers them at start.
func buildBoss(c *Contract, rng *rand.Rand, reserved core.PointSet) {
	maxX, maxY := c.grid.MaxX(), c.grid.MaxY()
	for x := 0; x < maxX; x++ {
		c.addStatic(core.Point{X: x, Y: 0})
		c.addStatic(core.Point{X: x, Y: maxY - 1})
	}
	for y := 1; y < maxY-1; y++ {
		c.addStatic(core.Point{X: 0, Y: y})
		c.addStatic(core.Point{X: maxX - 1, Y: y})
	}

	exclude := core.NewPointSet(c.static)
	for p := range reserved {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				exclude.Add(core.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	for i := 0; i < c.opts.Boss.Obstacles; i++ {
		center := c.grid.RandomPosition(rng, exclude)
		exclude.Add(center)
		c.bosses = append(c.bosses, BossBlock{
			CX: float64(center.X),
			CY: float64(center.Y),
			VX: nonZeroUnit(rng),
			VY: nonZeroUnit(rng),
		})
	}
}

// unitStep draws -1, 0 or 1 and maps 0 to 1, so a mover never stands still.
func unitStep(rng *rand.Rand) int {
	v := rng.Intn(3) - 1
	if v == 0 {
		v = 1
	}
	return v
}

func nonZeroUnit(rng *rand.Rand) float64 {
	return float64(unitStep(rng))
}
