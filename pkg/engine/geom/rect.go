// Package geom provides integer geometry primitives shared by the generator
// and the tile grid.
package geom

import "fmt"

// Rect is an axis-aligned integer rectangle. X and Y are the minimum corner;
// the rectangle covers [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from its corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// XMax returns the exclusive maximum x coordinate
func (r Rect) XMax() int {
	return r.X + r.Width
}

// YMax returns the exclusive maximum y coordinate
func (r Rect) YMax() int {
	return r.Y + r.Height
}

// Center returns the integer center cell of the rectangle
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns Width*Height
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.XMax() && o.X < r.XMax() &&
		r.Y < o.YMax() && o.Y < r.YMax()
}

// Intersect returns the overlap of r and o, or the zero Rect when they do not intersect
func (r Rect) Intersect(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.XMax(), o.XMax()) - x,
		Height: min(r.YMax(), o.YMax()) - y,
	}
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.XMax() && y >= r.Y && y < r.YMax()
}

// ContainsRect reports whether o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.XMax() <= r.XMax() && o.YMax() <= r.YMax()
}

// String implements fmt.Stringer
func (r Rect) String() string {
	return fmt.Sprintf("(x:%d, y:%d, w:%d, h:%d)", r.X, r.Y, r.Width, r.Height)
}
