package core

// Direction is a unit step on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movable directions.
var Directions = [4]Direction{DirRight, DirLeft, DirDown, DirUp}

// Delta returns the (dx, dy) vector for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// DirectionOf maps a unit vector to a Direction. Anything else is DirNone.
func DirectionOf(dx, dy int) Direction {
	switch {
	case dx == 0 && dy == -1:
		return DirUp
	case dx == 0 && dy == 1:
		return DirDown
	case dx == -1 && dy == 0:
		return DirLeft
	case dx == 1 && dy == 0:
		return DirRight
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
