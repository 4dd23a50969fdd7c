package core

import "math/rand"

// MaxRandomAttempts bounds the rejection sampling in Grid.RandomPosition.
const MaxRandomAttempts = 100

// Point is an integer cell coordinate on the play grid.
type Point struct {
	X, Y int
}

// Add returns p translated by the vector of d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// PointSet is a set of grid cells.
type PointSet map[Point]struct{}

// NewPointSet builds a set from any number of point slices.
func NewPointSet(groups ...[]Point) PointSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	s := make(PointSet, n)
	for _, g := range groups {
		for _, p := range g {
			s[p] = struct{}{}
		}
	}
	return s
}

// Has reports whether p is in the set. A nil set is empty.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Add inserts points into the set.
func (s PointSet) Add(points ...Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

// Grid describes the play field in pixels and cells.
// MaxX and MaxY are the exclusive cell bounds.
type Grid struct {
	Width    int // Field width in pixels
	Height   int // Field height in pixels
	CellSize int // Cell edge in pixels
}

// MaxX returns the number of columns.
func (g Grid) MaxX() int {
	return g.Width / g.CellSize
}

// MaxY returns the number of rows.
func (g Grid) MaxY() int {
	return g.Height / g.CellSize
}

// InBounds reports whether p lies inside [0,MaxX)×[0,MaxY).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.MaxX() && p.Y >= 0 && p.Y < g.MaxY()
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.MaxX() / 2, Y: g.MaxY() / 2}
}

// GridToPixel returns the pixel centre of a cell.
func (g Grid) GridToPixel(p Point) (x, y int) {
	return p.X*g.CellSize + g.CellSize/2, p.Y*g.CellSize + g.CellSize/2
}

// PixelToGrid returns the cell containing the pixel (x, y).
func (g Grid) PixelToGrid(x, y int) Point {
	return Point{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)}
}

// IsPositionValid reports whether p is in bounds and not an obstacle.
func (g Grid) IsPositionValid(p Point, obstacles PointSet) bool {
	return g.InBounds(p) && !obstacles.Has(p)
}

// RandomPosition draws uniform cells until one is not excluded, giving up
// after MaxRandomAttempts draws. On give-up the last draw is returned even if
// it is excluded; callers on crowded boards must tolerate that.
func (g Grid) RandomPosition(rng *rand.Rand, exclude PointSet) Point {
	var p Point
	for attempt := 0; attempt < MaxRandomAttempts; attempt++ {
		p = Point{X: rng.Intn(g.MaxX()), Y: rng.Intn(g.MaxY())}
		if !exclude.Has(p) {
			return p
		}
	}
	return p
}

// Distance returns the Manhattan distance between two cells.
func Distance(a, b Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
