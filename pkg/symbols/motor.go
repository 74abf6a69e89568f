package symbols

import (
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// NewMotor builds a motor symbol on the standard two-terminal layout:
// a gapped centerline, flared terminal brackets, and the round body.
//
// Anchors: start, end, center.
func NewMotor() *Element {
	e := newElement()
	twoTerm(&e)
	mw := 0.22

	// Centerline with a break where the body sits.
	e.add(segments.NewLine(
		geom.Pt(-mw, 0), geom.Pt(-mw, 0),
		geom.Gap,
		geom.Pt(1+mw, 0), geom.Pt(1+mw, 0),
	))
	// Terminal brackets.
	e.add(segments.NewLine(geom.Pt(0, -mw), geom.Pt(-mw, -mw), geom.Pt(-mw, mw), geom.Pt(0, mw)))
	e.add(segments.NewLine(geom.Pt(1, -mw), geom.Pt(1+mw, -mw), geom.Pt(1+mw, mw), geom.Pt(1, mw)))
	// Body.
	e.add(segments.Circle{Center: geom.Pt(0.5, 0), Radius: 0.5})

	return &e
}
