package world

// Direction represents a cardinal direction
type Direction int

// Direction constants. North points towards increasing y.
const (
	North Direction = iota
	East
	South
	West
)

// FillOrder is the neighbour order used by flood fills: north, south, east, west
var FillOrder = []Direction{North, South, East, West}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
