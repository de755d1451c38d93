package parlor

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Positioner supplies a world-space position for camera follow targets.
// Any entity type the surrounding engine uses can satisfy it.
type Positioner interface {
	Position() Vec2
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
