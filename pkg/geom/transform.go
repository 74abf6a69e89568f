package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform is a 2D affine transform in homogeneous coordinates.
// The zero value is not valid; start from Identity.
type Transform struct {
	m *mat.Dense // 3x3, bottom row [0 0 1]
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// Translate returns the transform followed by a translation.
func (t Transform) Translate(dx, dy float64) Transform {
	return t.compose(mat.NewDense(3, 3, []float64{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	}))
}

// Rotate returns the transform followed by a counter-clockwise
// rotation about the origin, in degrees.
func (t Transform) Rotate(degrees float64) Transform {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return t.compose(mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}))
}

// Scale returns the transform followed by a scale about the origin.
// Negative factors mirror the respective axis.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.compose(mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}))
}

// compose left-multiplies so the new operation applies after t.
func (t Transform) compose(op *mat.Dense) Transform {
	out := mat.NewDense(3, 3, nil)
	out.Mul(op, t.m)
	return Transform{m: out}
}

// Apply maps a point through the transform. Gap sentinels pass through
// untouched so polyline breaks survive placement.
func (t Transform) Apply(p Point) Point {
	if p.IsGap() {
		return p
	}
	return Point{
		X: t.m.At(0, 0)*p.X + t.m.At(0, 1)*p.Y + t.m.At(0, 2),
		Y: t.m.At(1, 0)*p.X + t.m.At(1, 1)*p.Y + t.m.At(1, 2),
	}
}

// ApplyAll maps a point slice through the transform, returning a new slice.
func (t Transform) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}
