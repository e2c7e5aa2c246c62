// Package gamemath holds small pure helpers shared by gameplay systems.
package gamemath

import "math"

const overlapEpsilon = 1e-6

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a rectangle of size w by h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }

// Overlaps reports whether the interiors intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right()-overlapEpsilon &&
		o.X < r.Right()-overlapEpsilon &&
		r.Y < o.Bottom()-overlapEpsilon &&
		o.Y < r.Bottom()-overlapEpsilon
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Distance returns the distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
