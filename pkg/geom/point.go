// Package geom provides the 2D geometric types shared by the symbol generators.
package geom

import "math"

// Point represents a 2D point in an element's local coordinate frame.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Gap is the sentinel point that marks a break in a polyline.
// Segments containing it are drawn as separate runs on either side.
var Gap = Point{X: math.NaN(), Y: math.NaN()}

// IsGap reports whether the point is the polyline break sentinel.
func (p Point) IsGap() bool {
	return math.IsNaN(p.X) && math.IsNaN(p.Y)
}
