// Package core provides fundamental types and utilities for the shooter.
// It does not depend on Bubble Tea, keeping game logic pure and testable.
// World vectors are donburi's math.Vec2; Rect and the clamp helpers work in
// screen cells.
package core

import dmath "github.com/yohamta/donburi/features/math"

// DefaultDirection is what Direction returns for a zero-length vector:
// the straight-down unit vector (positive Y points down the screen).
var DefaultDirection = dmath.NewVec2(0, 1)

// Direction returns the unit vector pointing along v.
// A zero-length vector yields DefaultDirection.
func Direction(v dmath.Vec2) dmath.Vec2 {
	if v.Magnitude() <= dmath.Epsilon {
		return DefaultDirection
	}
	return v.Normalized()
}

// Box is an axis-aligned bounding box in world coordinates.
// Pos is the top-left corner.
type Box struct {
	Pos  dmath.Vec2
	W, H float64
}

// Intersects returns true if two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.Pos.X >= o.Pos.X+o.W || o.Pos.X >= b.Pos.X+b.W {
		return false
	}
	if b.Pos.Y >= o.Pos.Y+o.H || o.Pos.Y >= b.Pos.Y+b.H {
		return false
	}
	return true
}

// Rect represents an integer rectangle in screen cells.
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
