// Package physics provides the geometric primitives used for collision detection.
package physics

import "math"

// Point is a 2D position in logical play-area pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the box of size w×h centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// CircleBounds returns the smallest box enclosing a circle.
// Circles take part in collision only through this box.
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
}

// Center returns the centre point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes share interior area.
// Intervals are open: boxes that only touch at an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Overlaps is the method form of the package-level Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp restricts v to [lo, hi]. If lo > hi the midpoint is returned,
// which keeps entities centred in areas smaller than themselves.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
