// Package geom provides the small set of planar primitives shared by the
// board model, the contour builder, and the toolpath planner. All values
// are in millimetres.
package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	Start Point
	End   Point
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool {
	return s.Start == s.End
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
}

// RectFromCorners builds the bounding rectangle of two arbitrary corners.
func RectFromCorners(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{OriginX: minX, OriginY: minY, Width: maxX - minX, Height: maxY - minY}
}

// MaxX returns the maximum X extent of the rectangle.
func (r Rect) MaxX() float64 { return r.OriginX + r.Width }

// MaxY returns the maximum Y extent of the rectangle.
func (r Rect) MaxY() float64 { return r.OriginY + r.Height }

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.OriginX <= o.MaxX() && o.OriginX <= r.MaxX() &&
		r.OriginY <= o.MaxY() && o.OriginY <= r.MaxY()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.OriginX, o.OriginX)
	minY := math.Min(r.OriginY, o.OriginY)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{OriginX: minX, OriginY: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds accumulates a bounding rectangle over a stream of points.
// The zero value is empty; Add the points, then call Rect.
type Bounds struct {
	set  bool
	minX float64
	minY float64
	maxX float64
	maxY float64
}

// Add extends the bounds to include p.
func (b *Bounds) Add(p Point) {
	if !b.set {
		b.set = true
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

// Empty reports whether no points have been added.
func (b *Bounds) Empty() bool { return !b.set }

// Rect returns the accumulated bounding rectangle.
// Calling Rect on empty bounds returns the zero rectangle.
func (b *Bounds) Rect() Rect {
	if !b.set {
		return Rect{}
	}
	return Rect{OriginX: b.minX, OriginY: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}
