// Package core provides fundamental types and utilities for the game runtime.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners builds a rectangle from an inclusive top-left and an
// exclusive bottom-right corner. Inverted corners yield an empty rectangle.
func RectFromCorners(x0, y0, x1, y1 int) Rect {
	return Rect{X: x0, Y: y0, W: Max(0, x1-x0), H: Max(0, y1-y0)}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clip restricts the rectangle to a w x h area anchored at the origin.
func (r Rect) Clip(w, h int) Rect {
	x0 := Clamp(r.X, 0, w)
	y0 := Clamp(r.Y, 0, h)
	x1 := Clamp(r.Right(), 0, w)
	y1 := Clamp(r.Bottom(), 0, h)
	return RectFromCorners(x0, y0, x1, y1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
