// Package core provides fundamental types shared by the simulation and the
// terminal platform. It has no external dependencies (in particular no
// Bubble Tea) so that game logic stays pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing and for
// hit-testing mouse clicks against the terminal grid.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point in playfield units. The playfield origin is the lower-left
// corner and Y grows upwards.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in playfield units, given by its
// lower-left corner and extents.
type Box struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies inside the box. Edges are inclusive so a
// click on the border of a button still counts.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Circle is a disc in playfield units.
type Circle struct {
	X, Y float64
	R    float64
}

// BoxOverlap reports whether two boxes intersect. All four comparisons are
// strict: boxes that only share an edge do not overlap.
func BoxOverlap(a, b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CircleOverlap reports whether the distance between the centres is strictly
// less than the sum of the radii.
func CircleOverlap(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.R+b.R
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
