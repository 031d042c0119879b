// Package core provides fundamental types and utilities shared by the game and its
// presenters. It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// RectF is an axis-aligned rectangle in field units.
// X, Y is the top-left corner; edges are inclusive.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a field rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside or on the edge of the rectangle.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ClosestPointOnRect returns the point of r nearest to (cx, cy).
// The result lies exactly on an edge coordinate whenever (cx, cy) is outside r
// along that axis, which callers rely on for side classification.
func ClosestPointOnRect(cx, cy float64, r RectF) (float64, float64) {
	return ClampF(cx, r.X, r.Right()), ClampF(cy, r.Y, r.Bottom())
}

// CircleRectOverlap reports whether a circle strictly overlaps r.
// Touching at exactly distance radius is not an overlap.
func CircleRectOverlap(cx, cy, radius float64, r RectF) bool {
	px, py := ClosestPointOnRect(cx, cy, r)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy < radius*radius
}

// NormalizeToSpeed rescales (dx, dy) to the given magnitude.
// A zero vector has no direction, so it becomes straight up: (0, -speed).
func NormalizeToSpeed(dx, dy, speed float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, -speed
	}
	return dx / mag * speed, dy / mag * speed
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
