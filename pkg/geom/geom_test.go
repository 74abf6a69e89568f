package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if d := p.Distance(Pt(0, 0)); math.Abs(d-5) > tol {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := p.Add(Pt(1, -1)); got != Pt(4, 3) {
		t.Errorf("Add = %v, want (4, 3)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2, 3)", got)
	}
	if got := p.Scale(2); got != Pt(6, 8) {
		t.Errorf("Scale = %v, want (6, 8)", got)
	}
}

func TestGapSentinel(t *testing.T) {
	if !Gap.IsGap() {
		t.Error("Gap.IsGap() = false")
	}
	if Pt(0, 0).IsGap() {
		t.Error("origin reported as gap")
	}
}

func TestTransformTranslateRotate(t *testing.T) {
	tr := Identity().Rotate(90).Translate(1, 2)
	got := tr.Apply(Pt(1, 0))
	if math.Abs(got.X-1) > tol || math.Abs(got.Y-3) > tol {
		t.Errorf("Apply = %v, want (1, 3)", got)
	}

	// Gap sentinels survive placement untouched.
	if !tr.Apply(Gap).IsGap() {
		t.Error("transform consumed the gap sentinel")
	}
}

func TestTransformMirror(t *testing.T) {
	tr := Identity().Scale(-1, 1)
	got := tr.Apply(Pt(2, 5))
	if math.Abs(got.X+2) > tol || math.Abs(got.Y-5) > tol {
		t.Errorf("Apply = %v, want (-2, 5)", got)
	}
}

func TestTransformOrder(t *testing.T) {
	// Translate-then-rotate differs from rotate-then-translate.
	a := Identity().Translate(1, 0).Rotate(90).Apply(Pt(0, 0))
	if math.Abs(a.X) > tol || math.Abs(a.Y-1) > tol {
		t.Errorf("translate-then-rotate = %v, want (0, 1)", a)
	}
	b := Identity().Rotate(90).Translate(1, 0).Apply(Pt(0, 0))
	if math.Abs(b.X-1) > tol || math.Abs(b.Y) > tol {
		t.Errorf("rotate-then-translate = %v, want (1, 0)", b)
	}
}

func TestCycloidEndpoints(t *testing.T) {
	pts := Cycloid(CycloidOpts{Loops: 3, A: 0.06, B: 0.19})
	if len(pts) != 150 {
		t.Fatalf("got %d points, want 150", len(pts))
	}
	if math.Abs(pts[0].X) > tol || math.Abs(pts[0].Y) > 1e-6 {
		t.Errorf("curve starts at %v, want origin", pts[0])
	}
	if math.Abs(pts[len(pts)-1].Y) > 1e-6 {
		t.Errorf("curve ends at y = %v, want 0", pts[len(pts)-1].Y)
	}
	// Prolate loops double back, so X is not monotonic.
	backtracks := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			backtracks++
		}
	}
	if backtracks == 0 {
		t.Error("expected loops to double back in X")
	}
}

func TestCycloidVerticalLeftmost(t *testing.T) {
	// The vertical form's leftmost point is the tap reference; the loop
	// bellies extend left of the winding axis.
	pts := Cycloid(CycloidOpts{Loops: 3, A: 0.06, B: 0.19, Vertical: true})
	minX := pts[0].X
	for _, p := range pts {
		minX = math.Min(minX, p.X)
	}
	if minX >= 0 {
		t.Errorf("leftmost x = %v, want negative", minX)
	}
}

func TestCycloidVerticalFlip(t *testing.T) {
	base := Cycloid(CycloidOpts{Loops: 2, A: 0.06, B: 0.19})
	vert := Cycloid(CycloidOpts{Loops: 2, A: 0.06, B: 0.19, Vertical: true})
	for i := range base {
		if math.Abs(base[i].X-vert[i].Y) > tol || math.Abs(base[i].Y-vert[i].X) > tol {
			t.Fatalf("vertical point %d = %v, want axes of %v swapped", i, vert[i], base[i])
		}
	}

	flip := Cycloid(CycloidOpts{Loops: 2, A: 0.06, B: 0.19, Flip: true})
	for i := range base {
		if math.Abs(base[i].Y+flip[i].Y) > tol {
			t.Fatalf("flip point %d y = %v, want %v", i, flip[i].Y, -base[i].Y)
		}
	}
}

func TestCycloidNormAndOffset(t *testing.T) {
	pts := Cycloid(CycloidOpts{Loops: 4, A: 0.06, B: 0.19, Norm: true})
	if got := pts[len(pts)-1].X; math.Abs(got-1) > tol {
		t.Errorf("normalized span ends at x = %v, want 1", got)
	}

	ofst := Cycloid(CycloidOpts{Loops: 1, A: 0.06, B: 0.19, Offset: Pt(2, 3)})
	if math.Abs(ofst[0].X-2) > tol || math.Abs(ofst[0].Y-3) > 1e-6 {
		t.Errorf("offset curve starts at %v, want (2, 3)", ofst[0])
	}
}
