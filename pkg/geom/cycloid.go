package geom

import "math"

// CycloidOpts configures a prolate cycloid curve.
type CycloidOpts struct {
	Loops    int     // Number of full loops
	Offset   Point   // Translation applied to the finished curve
	A        float64 // Rolling radius (distance per radian along the axis)
	B        float64 // Pen radius; B > A produces the self-crossing loops
	Norm     bool    // Normalize the curve length along its axis to 1
	Vertical bool    // Swap axes so the curve runs vertically
	Flip     bool    // Mirror across the curve's axis
}

// DefaultCycloid returns the coil proportions used by the inductor-style windings.
func DefaultCycloid() CycloidOpts {
	return CycloidOpts{Loops: 4, A: 0.06, B: 0.19}
}

// Cycloid generates the point sequence of a prolate cycloid,
//
//	x(t) = a*t - b*sin(t)
//	y(t) = a - b*cos(t)
//
// trimmed so the curve starts and ends on y = 0, sampled at 50 points per loop.
// The first point is shifted to the offset origin.
func Cycloid(opts CycloidOpts) []Point {
	if opts.Loops < 1 {
		opts.Loops = 1
	}
	a, b := opts.A, opts.B
	if a <= 0 || b <= a {
		def := DefaultCycloid()
		a, b = def.A, def.B
	}

	// y = 0 when cos(t) = a/b; trim the parameter range to those intercepts.
	yint := math.Acos(a / b)
	t0 := yint
	t1 := 2*math.Pi*float64(opts.Loops) - yint
	num := opts.Loops * 50

	pts := make([]Point, num)
	for i := 0; i < num; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(num-1)
		pts[i] = Point{
			X: a*t - b*math.Sin(t),
			Y: a - b*math.Cos(t),
		}
	}

	// Shift so the curve begins at the origin.
	x0 := pts[0].X
	for i := range pts {
		pts[i].X -= x0
	}

	if opts.Norm {
		span := pts[len(pts)-1].X
		if span != 0 {
			for i := range pts {
				pts[i].X /= span
			}
		}
	}
	if opts.Flip {
		for i := range pts {
			pts[i].Y = -pts[i].Y
		}
	}
	if opts.Vertical {
		for i := range pts {
			pts[i].X, pts[i].Y = pts[i].Y, pts[i].X
		}
	}
	for i := range pts {
		pts[i].X += opts.Offset.X
		pts[i].Y += opts.Offset.Y
	}
	return pts
}
