// Package core provides fundamental types and utilities for the stomper
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in world units. The world uses a y-up coordinate
// system with the origin at the screen center; the renderer flips it.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in world units, stored as a center
// point and half-extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box from its center and half-extents.
func NewBox(center, half Vec2) Box {
	return Box{Center: center, Half: half}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.Half.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.Half.X
}

// Top returns the y-coordinate of the top edge (y-up).
func (b Box) Top() float64 {
	return b.Center.Y + b.Half.Y
}

// Bottom returns the y-coordinate of the bottom edge (y-up).
func (b Box) Bottom() float64 {
	return b.Center.Y - b.Half.Y
}

// Overlaps reports whether two boxes overlap. The test is strict: boxes
// that merely touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if abs(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Rect represents an axis-aligned rectangle in screen cells, used by the
// drawing helpers on Screen.
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
