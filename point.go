package segdisplay

import "math"

// Point represents a 2D point or vector in painter coordinates.
// Y grows downwards.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Point
}

// RectFromSize returns the rectangle of the given size with its top-left
// corner at min.
func RectFromSize(min Point, size Size) Rect {
	return Rect{Min: min, Max: Point{X: min.X + size.W, Y: min.Y + size.H}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{W: r.Width(), H: r.Height()} }

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// LeftCenter returns the midpoint of the left edge of r.
func (r Rect) LeftCenter() Point {
	return Point{X: r.Min.X, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Corners returns the four corners of r in clockwise order starting at Min.
func (r Rect) Corners() []Point {
	return []Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}
