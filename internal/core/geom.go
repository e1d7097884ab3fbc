// Package core provides the types shared by games and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a position or velocity in fractional cell units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Cell returns the screen cell containing the point.
func (v Vec) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// RectF is an axis-aligned box in fractional cell units, used for contact tests
// between moving tokens.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// RectAround returns a box of the given size centered on c.
func RectAround(c Vec, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Intersects returns true if the two boxes overlap with non-zero area.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.X+other.W || other.X >= r.X+r.W {
		return false
	}
	if r.Y >= other.Y+other.H || other.Y >= r.Y+r.H {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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
