// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are viewport pixels with y growing downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a w×h rectangle centered on (cx, cy).
func RectAt(cx, cy, w, h int) Rect {
	r := NewRect(0, 0, w, h)
	r.SetCenter(cx, cy)
	return r
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SetCenter moves the rectangle so that Center returns (cx, cy).
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Move translates the rectangle in place.
func (r *Rect) Move(v Vec) {
	r.X += v.X
	r.Y += v.Y
}

// Vec is an integer (dx, dy) pair used both as velocity and movement delta.
type Vec struct {
	X, Y int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Unit returns the per-axis sign of v.
func (v Vec) Unit() Vec {
	return Vec{X: Sign(v.X), Y: Sign(v.Y)}
}

// Angle returns the screen-space heading of v in degrees, counter-clockwise
// from the positive x axis. The y component is inverted because screen y
// grows downward.
func (v Vec) Angle() float64 {
	return math.Atan2(float64(-v.Y), float64(v.X)) * 180 / math.Pi
}

// Directions returns the 8 compass vectors with the given per-axis magnitude,
// counter-clockwise starting from right.
func Directions(step int) []Vec {
	return []Vec{
		{X: +step, Y: 0},     // right
		{X: +step, Y: -step}, // up-right
		{X: 0, Y: -step},     // up
		{X: -step, Y: -step}, // up-left
		{X: -step, Y: 0},     // left
		{X: -step, Y: +step}, // down-left
		{X: 0, Y: +step},     // down
		{X: +step, Y: +step}, // down-right
	}
}

// Viewport is the fixed-size visible play area.
type Viewport struct {
	W, H int
}

// CheckBound reports whether r lies within the viewport on each axis.
// horizontal is false when r pokes out on the left or right, vertical
// when it pokes out on the top or bottom.
func CheckBound(r Rect, vp Viewport) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if r.X < 0 || vp.W < r.Right() {
		horizontal = false
	}
	if r.Y < 0 || vp.H < r.Bottom() {
		vertical = false
	}
	return horizontal, vertical
}

// InBounds reports whether r lies fully inside the viewport.
func InBounds(r Rect, vp Viewport) bool {
	h, v := CheckBound(r, vp)
	return h && v
}

// RotatedBounds returns the bounding box size of a w×h image rotated by
// the given angle in degrees.
func RotatedBounds(w, h int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	fw, fh := float64(w), float64(h)
	return int(math.Round(fw*c + fh*s)), int(math.Round(fw*s + fh*c))
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
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
