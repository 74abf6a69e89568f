// Package segments defines the drawing primitives emitted by the symbol
// generators: polylines, arcs, circles, polygons, and text labels.
// Primitives are value types; an element appends them in draw order and
// never mutates them afterward.
package segments

import (
	"math"

	"github.com/schemalab/symkit/pkg/geom"
)

// LineStyle selects how a stroked primitive is dashed.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

// Arrow selects an optional arrowhead decoration on a polyline.
type Arrow string

const (
	ArrowNone    Arrow = ""
	ArrowForward Arrow = "->"
	ArrowReverse Arrow = "<-"
	ArrowBoth    Arrow = "<->"
)

// Fill selects how a closed primitive is filled.
type Fill int

const (
	// FillNone leaves the interior transparent.
	FillNone Fill = iota
	// FillBackground paints the interior with the canvas background,
	// masking whatever is drawn beneath.
	FillBackground
	// FillSolid paints the interior with the stroke color.
	FillSolid
)

// Segment is the interface satisfied by every drawing primitive.
type Segment interface {
	// Transform returns a copy of the primitive mapped through an
	// affine placement transform.
	Transform(t geom.Transform) Segment
	// Bounds expands the bounding box to cover the primitive.
	Bounds(bb *BoundingBox)
}

// Line is an open polyline. A geom.Gap sentinel in Points breaks the
// stroke into separate runs, leaving the pen position unchanged.
type Line struct {
	Points []geom.Point
	Style  LineStyle
	Arrow  Arrow
	ZOrder int
}

// NewLine builds a solid polyline through the given points.
func NewLine(pts ...geom.Point) Line {
	return Line{Points: pts}
}

// Runs splits the polyline at gap sentinels into individually drawable runs.
func (l Line) Runs() [][]geom.Point {
	var runs [][]geom.Point
	var cur []geom.Point
	for _, p := range l.Points {
		if p.IsGap() {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// HasGap reports whether the polyline contains a break sentinel.
func (l Line) HasGap() bool {
	for _, p := range l.Points {
		if p.IsGap() {
			return true
		}
	}
	return false
}

// Transform implements Segment.
func (l Line) Transform(t geom.Transform) Segment {
	out := l
	out.Points = t.ApplyAll(l.Points)
	return out
}

// Bounds implements Segment.
func (l Line) Bounds(bb *BoundingBox) {
	for _, p := range l.Points {
		if !p.IsGap() {
			bb.Expand(p)
		}
	}
}

// Arc is an elliptical arc swept counter-clockwise from Theta1 to Theta2
// (degrees). Width and Height are the full axis lengths of the ellipse;
// Rotation tilts the ellipse about its center.
type Arc struct {
	Center   geom.Point
	Width    float64
	Height   float64
	Theta1   float64
	Theta2   float64
	Rotation float64
	Style    LineStyle
	Arrow    Arrow
	ZOrder   int
}

// Transform implements Segment. Rotation and mirroring of the placement
// are folded into the arc's own angles so the swept shape is preserved.
func (a Arc) Transform(t geom.Transform) Segment {
	out := a
	out.Center = t.Apply(a.Center)

	// Recover the placement rotation and handedness from the images of
	// the axis directions.
	o := t.Apply(geom.Pt(0, 0))
	ux := t.Apply(geom.Pt(1, 0)).Sub(o)
	uy := t.Apply(geom.Pt(0, 1)).Sub(o)
	angle := math.Atan2(ux.Y, ux.X) * 180 / math.Pi
	det := ux.X*uy.Y - ux.Y*uy.X

	if det < 0 {
		// Mirrored placement reverses sweep direction.
		out.Theta1, out.Theta2 = -a.Theta2, -a.Theta1
		out.Rotation = -a.Rotation
	}
	out.Rotation += angle
	return out
}

// Bounds implements Segment. The full ellipse extent is used; for the
// symbol shapes in this library the overestimate is negligible.
func (a Arc) Bounds(bb *BoundingBox) {
	bb.Expand(geom.Pt(a.Center.X-a.Width/2, a.Center.Y-a.Height/2))
	bb.Expand(geom.Pt(a.Center.X+a.Width/2, a.Center.Y+a.Height/2))
}

// Circle is a full circle with optional fill.
type Circle struct {
	Center geom.Point
	Radius float64
	Fill   Fill
	Style  LineStyle
	ZOrder int
}

// Transform implements Segment. The radius is scaled by the mean of the
// axis scale factors; placements used by this library are rigid.
func (c Circle) Transform(t geom.Transform) Segment {
	out := c
	out.Center = t.Apply(c.Center)
	o := t.Apply(geom.Pt(0, 0))
	sx := t.Apply(geom.Pt(1, 0)).Distance(o)
	sy := t.Apply(geom.Pt(0, 1)).Distance(o)
	out.Radius = c.Radius * (sx + sy) / 2
	return out
}

// Bounds implements Segment.
func (c Circle) Bounds(bb *BoundingBox) {
	bb.Expand(geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius))
	bb.Expand(geom.Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius))
}

// Poly is a polygon outline, closed back to the first point unless Open.
type Poly struct {
	Points []geom.Point
	Open   bool
	Fill   Fill
	Style  LineStyle
	ZOrder int
}

// Transform implements Segment.
func (p Poly) Transform(t geom.Transform) Segment {
	out := p
	out.Points = t.ApplyAll(p.Points)
	return out
}

// Bounds implements Segment.
func (p Poly) Bounds(bb *BoundingBox) {
	for _, pt := range p.Points {
		bb.Expand(pt)
	}
}

// Text is a string anchored at a point, drawn centered on it.
type Text struct {
	Position geom.Point
	Label    string
	ZOrder   int
}

// Transform implements Segment.
func (t Text) Transform(tr geom.Transform) Segment {
	out := t
	out.Position = tr.Apply(t.Position)
	return out
}

// Bounds implements Segment.
func (t Text) Bounds(bb *BoundingBox) {
	bb.Expand(t.Position)
}
