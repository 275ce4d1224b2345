// Package physics provides collision detection primitives.
package physics

// Rect is an axis-aligned rectangle: X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the far edge on the x axis.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the far edge on the y axis.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the rectangle's centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether a and b intersect: on both axes each near edge
// lies strictly before the other's far edge. Touching edges do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Clamp limits v to [lo, hi]. If hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
