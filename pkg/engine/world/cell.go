// Package world provides the tile-grid primitives a dungeon layout is
// materialized into.
package world

import "fmt"

// Cell is a single tile position in world coordinates
type Cell struct {
	X int
	Y int
}

// Neighbor returns the adjacent cell in the given direction
func (c Cell) Neighbor(dir Direction) Cell {
	dx, dy := dir.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the adjacent cells in FillOrder
func (c Cell) Neighbors() []Cell {
	out := make([]Cell, 0, len(FillOrder))
	for _, dir := range FillOrder {
		out = append(out, c.Neighbor(dir))
	}
	return out
}

// String implements fmt.Stringer
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}
