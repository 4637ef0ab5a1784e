package entity

import "math"

// Rect is an axis-aligned rectangle in integer pixel coordinates.
// Right and Bottom are exclusive: a rect covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has zero width or height.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the integer center point.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveBottom returns the rect moved vertically so its bottom edge sits at bottom.
func (r Rect) MoveBottom(bottom int) Rect {
	r.Y = bottom - r.H
	return r
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersection returns the overlapping area of r and o.
// The zero Rect is returned when they are disjoint.
func (r Rect) Intersection(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scale returns the rect resized by factor around the same center.
// Sizes are rounded to the nearest pixel.
func (r Rect) Scale(factor float64) Rect {
	cx, cy := r.Center()
	w := int(math.Round(float64(r.W) * factor))
	h := int(math.Round(float64(r.H) * factor))
	return NewRect(cx-w/2, cy-h/2, w, h)
}
