package world

import (
	"fmt"

	"dungeongen/pkg/engine/geom"
)

// Tile is the value stored in a grid cell
type Tile int

// Tile values
const (
	Open Tile = 0 // open space, floor candidate
	Wall Tile = 1 // room outline marker
)

// Grid is a rectangular tile map covering a bounding rectangle. Rows run along
// y and columns along x, both relative to the bounds origin.
type Grid struct {
	tiles  [][]Tile
	bounds geom.Rect
	rows   int
	cols   int
}

// NewGrid creates a grid with the given dimensions whose origin is (0, 0)
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(geom.NewRect(0, 0, cols, rows))
	return g
}

// NewGridFor creates an all-open grid covering bounds
func NewGridFor(bounds geom.Rect) *Grid {
	g := &Grid{}
	g.Build(bounds)
	return g
}

// Build initializes the grid to cover bounds with every tile Open
func (g *Grid) Build(bounds geom.Rect) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.bounds = bounds
	g.rows = bounds.Height
	g.cols = bounds.Width
	g.tiles = make([][]Tile, g.rows)
	for row := range g.tiles {
		g.tiles[row] = make([]Tile, g.cols)
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the rectangle the grid covers
func (g *Grid) Bounds() geom.Rect {
	return g.bounds
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether the cell lies on the grid
func (g *Grid) Contains(c Cell) bool {
	row, col := g.position(c)
	return g.IsValidPosition(row, col)
}

// Get returns the tile at row/col. Positions off the grid read as Wall.
func (g *Grid) Get(row, col int) Tile {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.tiles[row][col]
}

// Set stores t at row/col. Returns false if out of bounds.
func (g *Grid) Set(row, col int, t Tile) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.tiles[row][col] = t
	return true
}

// At returns the tile under a cell in world coordinates
func (g *Grid) At(c Cell) Tile {
	row, col := g.position(c)
	return g.Get(row, col)
}

// SetAt stores t under a cell in world coordinates. Returns false if off the grid.
func (g *Grid) SetAt(c Cell, t Tile) bool {
	row, col := g.position(c)
	return g.Set(row, col, t)
}

// CellAt returns the world cell for a row/col position
func (g *Grid) CellAt(row, col int) Cell {
	return Cell{X: g.bounds.X + col, Y: g.bounds.Y + row}
}

func (g *Grid) position(c Cell) (row, col int) {
	return c.Y - g.bounds.Y, c.X - g.bounds.X
}

// FillRectOutline writes t on every perimeter cell of r that lies on the grid
func (g *Grid) FillRectOutline(r geom.Rect, t Tile) {
	if r.Empty() {
		return
	}
	for x := r.X; x < r.XMax(); x++ {
		g.SetAt(Cell{X: x, Y: r.Y}, t)
		g.SetAt(Cell{X: x, Y: r.YMax() - 1}, t)
	}
	for y := r.Y; y < r.YMax(); y++ {
		g.SetAt(Cell{X: r.X, Y: y}, t)
		g.SetAt(Cell{X: r.XMax() - 1, Y: y}, t)
	}
}

// FillRect writes t on every cell of r that lies on the grid
func (g *Grid) FillRect(r geom.Rect, t Tile) {
	for y := r.Y; y < r.YMax(); y++ {
		for x := r.X; x < r.XMax(); x++ {
			g.SetAt(Cell{X: x, Y: y}, t)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, t Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.tiles[row][col])
		}
	}
}

// Count returns how many tiles equal t
func (g *Grid) Count(t Tile) int {
	n := 0
	g.ForEachCell(func(_, _ int, v Tile) {
		if v == t {
			n++
		}
	})
	return n
}

// Values returns a copy of the grid as plain integers indexed [row][col]
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for row := range g.tiles {
		out[row] = make([]int, g.cols)
		for col, t := range g.tiles[row] {
			out[row][col] = int(t)
		}
	}
	return out
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{bounds: g.bounds, rows: g.rows, cols: g.cols}
	c.tiles = make([][]Tile, g.rows)
	for row := range g.tiles {
		c.tiles[row] = append([]Tile(nil), g.tiles[row]...)
	}
	return c
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}
	if len(g.tiles) != g.rows {
		return fmt.Sprintf("Grid has %d rows, want %d", len(g.tiles), g.rows)
	}
	for row, line := range g.tiles {
		if len(line) != g.cols {
			return fmt.Sprintf("Grid row %d has %d cols, want %d", row, len(line), g.cols)
		}
		for col, t := range line {
			if t != Open && t != Wall {
				return fmt.Sprintf("Grid tile (%d,%d) has unknown value %d", row, col, t)
			}
		}
	}
	return ""
}
