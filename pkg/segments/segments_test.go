package segments

import (
	"math"
	"testing"

	"github.com/schemalab/symkit/pkg/geom"
)

const tol = 1e-9

func TestLineRuns(t *testing.T) {
	l := NewLine(
		geom.Pt(0, 0), geom.Pt(1, 0),
		geom.Gap,
		geom.Pt(2, 0), geom.Pt(3, 0),
	)
	runs := l.Runs()
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if len(runs[0]) != 2 || len(runs[1]) != 2 {
		t.Errorf("run lengths %d, %d, want 2, 2", len(runs[0]), len(runs[1]))
	}
	if !l.HasGap() {
		t.Error("HasGap() = false")
	}

	solid := NewLine(geom.Pt(0, 0), geom.Pt(1, 1))
	if solid.HasGap() {
		t.Error("HasGap() = true for solid line")
	}
	if runs := solid.Runs(); len(runs) != 1 {
		t.Errorf("got %d runs for solid line, want 1", len(runs))
	}
}

func TestLineTransformKeepsGap(t *testing.T) {
	l := NewLine(geom.Pt(0, 0), geom.Gap, geom.Pt(1, 0))
	moved := l.Transform(geom.Identity().Translate(5, 5)).(Line)
	if !moved.Points[1].IsGap() {
		t.Error("gap sentinel lost in transform")
	}
	if moved.Points[0] != geom.Pt(5, 5) {
		t.Errorf("first point = %v, want (5, 5)", moved.Points[0])
	}
}

func TestArcTransformRotation(t *testing.T) {
	a := Arc{Center: geom.Pt(1, 0), Width: 2, Height: 2, Theta1: 0, Theta2: 90}
	out := a.Transform(geom.Identity().Rotate(90)).(Arc)
	if math.Abs(out.Center.X) > tol || math.Abs(out.Center.Y-1) > tol {
		t.Errorf("center = %v, want (0, 1)", out.Center)
	}
	if math.Abs(out.Rotation-90) > tol {
		t.Errorf("rotation = %v, want 90", out.Rotation)
	}
	if out.Theta1 != 0 || out.Theta2 != 90 {
		t.Errorf("sweep changed to (%v, %v)", out.Theta1, out.Theta2)
	}
}

func TestArcTransformMirror(t *testing.T) {
	a := Arc{Center: geom.Pt(0, 0), Width: 2, Height: 2, Theta1: 0, Theta2: 90}
	out := a.Transform(geom.Identity().Scale(-1, 1)).(Arc)
	// Mirroring reverses the sweep direction.
	if out.Theta1 != -90 || out.Theta2 != 0 {
		t.Errorf("mirrored sweep (%v, %v), want (-90, 0)", out.Theta1, out.Theta2)
	}
}

func TestCircleTransform(t *testing.T) {
	c := Circle{Center: geom.Pt(1, 1), Radius: 0.5}
	out := c.Transform(geom.Identity().Rotate(90).Translate(1, 0)).(Circle)
	if math.Abs(out.Radius-0.5) > tol {
		t.Errorf("rigid transform changed radius to %v", out.Radius)
	}
	if math.Abs(out.Center.X) > tol || math.Abs(out.Center.Y-1) > tol {
		t.Errorf("center = %v, want (0, 1)", out.Center)
	}
}

func TestBounds(t *testing.T) {
	segs := []Segment{
		NewLine(geom.Pt(-1, 0), geom.Gap, geom.Pt(2, 3)),
		Circle{Center: geom.Pt(0, 0), Radius: 1.5},
		Text{Position: geom.Pt(5, 0), Label: "x"},
	}
	bb := Bounds(segs)
	if bb.Min.X != -1.5 || bb.Min.Y != -1.5 {
		t.Errorf("min = %v, want (-1.5, -1.5)", bb.Min)
	}
	if bb.Max.X != 5 || bb.Max.Y != 3 {
		t.Errorf("max = %v, want (5, 3)", bb.Max)
	}
	if bb.Width() != 6.5 || bb.Height() != 4.5 {
		t.Errorf("size = %v x %v, want 6.5 x 4.5", bb.Width(), bb.Height())
	}
}

func TestEmptyBounds(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Error("fresh box not empty")
	}
	bb.Expand(geom.Pt(1, 1))
	if bb.IsEmpty() {
		t.Error("expanded box still empty")
	}
}
