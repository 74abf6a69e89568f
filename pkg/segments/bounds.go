package segments

import "github.com/schemalab/symkit/pkg/geom"

// BoundingBox represents a rectangular boundary in world coordinates.
type BoundingBox struct {
	Min geom.Point // Minimum corner
	Max geom.Point // Maximum corner
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: geom.Pt(1e9, 1e9),
		Max: geom.Pt(-1e9, -1e9),
	}
}

// IsEmpty checks if the bounding box has not been expanded yet.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a point.
func (bb *BoundingBox) Expand(p geom.Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox expands to include another bounding box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns the width of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() geom.Point {
	return geom.Pt((bb.Min.X+bb.Max.X)/2, (bb.Min.Y+bb.Max.Y)/2)
}

// Bounds returns the box covering a list of segments.
func Bounds(segs []Segment) BoundingBox {
	bb := NewBoundingBox()
	for _, s := range segs {
		s.Bounds(&bb)
	}
	return bb
}
