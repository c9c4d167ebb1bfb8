// Package core provides fundamental types and utilities shared by the game
// core and the platform. It has no external dependencies (especially no Bubble
// Tea) to keep simulation logic pure and testable.
package core

// Vec is an integer pair used for positions and directions.
type Vec struct {
	X, Y int
}

// V creates a new vector.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Sign reduces each component to -1, 0 or 1.
// Direction vectors are always kept in this form.
func (v Vec) Sign() Vec {
	return Vec{X: sign(v.X), Y: sign(v.Y)}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt creates a w×h rectangle whose center is (cx, cy).
func CenteredAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns the rectangle moved by delta.
func (r Rect) Translate(delta Vec) Rect {
	r.X += delta.X
	r.Y += delta.Y
	return r
}

// ClampTo keeps the rectangle inside bounds, stopping it exactly on the
// boundary. Clamping an in-bounds rectangle returns it unchanged.
func (r Rect) ClampTo(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection: touching edges do not overlap.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FlushTop reports whether r lies exactly on the top edge of bounds.
func (r Rect) FlushTop(bounds Rect) bool { return r.Y == bounds.Y }

// FlushBottom reports whether r lies exactly on the bottom edge of bounds.
func (r Rect) FlushBottom(bounds Rect) bool { return r.Bottom() == bounds.Bottom() }

// FlushLeft reports whether r lies exactly on the left edge of bounds.
func (r Rect) FlushLeft(bounds Rect) bool { return r.X == bounds.X }

// FlushRight reports whether r lies exactly on the right edge of bounds.
func (r Rect) FlushRight(bounds Rect) bool { return r.Right() == bounds.Right() }

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
