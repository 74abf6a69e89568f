package symbols

import (
	"math"
	"reflect"
	"testing"

	"github.com/schemalab/symkit/pkg/segments"
)

const tol = 1e-9

func TestTubeConstantRelations(t *testing.T) {
	// Every derived constant must satisfy its originating circle
	// relation: the lead endpoints lie on the envelope.
	if got := anodeLen*anodeLen + anodeH*anodeH; math.Abs(got-trR*trR) > tol {
		t.Errorf("anodeLen relation violated: got %v, want %v", got, trR*trR)
	}
	if got := cathodeGap * cathodeGap; math.Abs(got-(trR*trR-(cathodeLen/2)*(cathodeLen/2))) > tol {
		t.Errorf("cathodeGap relation violated: got %v", got)
	}
	if got := 2*cathodeTail + cathodeH; math.Abs(got-cathodeGap) > tol {
		t.Errorf("cathodeTail relation violated: got %v, want %v", got, cathodeGap)
	}
}

func TestTriodeAnchors(t *testing.T) {
	tr := NewTriode()

	want := []string{"a", "g", "k"}
	if got := tr.AnchorNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("anchor names = %v, want %v", got, want)
	}

	g, _ := tr.Anchor("g")
	if g.X != 0 || g.Y != trR {
		t.Errorf("g = %v, want (0, %v)", g, trR)
	}
	a, _ := tr.Anchor("a")
	if a.X != trR || a.Y != trD {
		t.Errorf("a = %v, want (%v, %v)", a, trR, trD)
	}
	if drop := tr.Drop(); drop.X != trD || drop.Y != 0 {
		t.Errorf("drop = %v, want (%v, 0)", drop, trD)
	}
}

func TestHalfTriodeMirror(t *testing.T) {
	// Left and right halves are exact mirror images about the vertical
	// centerline x = trR.
	left := NewTriode(TubeHalf(HalfLeft))
	right := NewTriode(TubeHalf(HalfRight))

	for _, name := range []string{"g", "k", "a"} {
		lp, ok := left.Anchor(name)
		if !ok {
			t.Fatalf("left half missing anchor %q", name)
		}
		rp, ok := right.Anchor(name)
		if !ok {
			t.Fatalf("right half missing anchor %q", name)
		}
		if math.Abs(rp.X-(2*trR-lp.X)) > tol {
			t.Errorf("anchor %q: right x = %v, want mirror of left %v", name, rp.X, lp.X)
		}
		if math.Abs(rp.Y-lp.Y) > tol {
			t.Errorf("anchor %q: right y = %v, want %v", name, rp.Y, lp.Y)
		}
	}
}

func countTexts(segs []segments.Segment) []segments.Text {
	var texts []segments.Text
	for _, s := range segs {
		if txt, ok := s.(segments.Text); ok {
			texts = append(texts, txt)
		}
	}
	return texts
}

func TestHalf12AX7PinNumbers(t *testing.T) {
	cases := []struct {
		side Half
		want map[string]bool
	}{
		{HalfLeft, map[string]bool{"2": true, "3": true, "1": true}},
		{HalfRight, map[string]bool{"7": true, "8": true, "6": true}},
	}
	for _, tc := range cases {
		tr := Half12AX7(tc.side)
		texts := countTexts(tr.Segments())
		if len(texts) != 3 {
			t.Fatalf("side %q: got %d pin labels, want 3", tc.side, len(texts))
		}
		for _, txt := range texts {
			if !tc.want[txt.Label] {
				t.Errorf("side %q: unexpected pin label %q", tc.side, txt.Label)
			}
		}
	}
}

func TestDualTriodeAnchors(t *testing.T) {
	dt := NewDualTriode()
	want := []string{"a1", "a2", "g1", "g2", "k1", "k2"}
	if got := dt.AnchorNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("anchor names = %v, want %v", got, want)
	}

	g1, _ := dt.Anchor("g1")
	g2, _ := dt.Anchor("g2")
	if g1.X != 0 {
		t.Errorf("g1.X = %v, want 0", g1.X)
	}
	if want := trD + dualTrGap; g2.X != want {
		t.Errorf("g2.X = %v, want %v", g2.X, want)
	}
	if drop := dt.Drop(); drop.X != trD+dualTrGap {
		t.Errorf("drop.X = %v, want %v", drop.X, trD+dualTrGap)
	}
}

func TestDualTriode12AX7Overlay(t *testing.T) {
	dt := DualTriode12AX7()
	texts := countTexts(dt.Segments())
	if len(texts) != 8 {
		t.Fatalf("got %d pin labels, want 8", len(texts))
	}
	seen := map[string]bool{}
	for _, txt := range texts {
		seen[txt.Label] = true
	}
	for _, pin := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		if !seen[pin] {
			t.Errorf("missing pin label %q", pin)
		}
	}
}

func TestPentodeAnchors(t *testing.T) {
	p := NewPentode()
	want := []string{"a", "g1", "g2", "g3", "k"}
	if got := p.AnchorNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("anchor names = %v, want %v", got, want)
	}

	a, _ := p.Anchor("a")
	if wantY := trD + pentGap; math.Abs(a.Y-wantY) > tol {
		t.Errorf("a.Y = %v, want %v", a.Y, wantY)
	}
	g2, _ := p.Anchor("g2")
	if wantY := trR + pentGap/2; math.Abs(g2.Y-wantY) > tol {
		t.Errorf("g2.Y = %v, want %v", g2.Y, wantY)
	}
}

func TestPentodeEmptyPinLabel(t *testing.T) {
	// The KT66's suppressor grid is internally connected: its pin entry
	// is present but blank, and the blank label must still be emitted.
	kt := PentodeKT66()
	texts := countTexts(kt.Segments())
	if len(texts) != 5 {
		t.Fatalf("KT66: got %d labels, want 5", len(texts))
	}
	blank := 0
	for _, txt := range texts {
		if txt.Label == "" {
			blank++
		}
	}
	if blank != 1 {
		t.Errorf("KT66: got %d blank labels, want exactly 1", blank)
	}

	// Omitting the key entirely draws no suppressor label at all.
	p := NewPentode(TubePins(PinNumbers{"g1": "5", "g2": "4", "a": "3", "k": "8"}))
	if texts := countTexts(p.Segments()); len(texts) != 4 {
		t.Errorf("omitted g3: got %d labels, want 4", len(texts))
	}

	el := PentodeEL34()
	for _, txt := range countTexts(el.Segments()) {
		if txt.Label == "" {
			t.Error("EL34 should have no blank labels")
		}
	}
}

func TestDrawHeaters(t *testing.T) {
	tr := NewTriode(TubeHeaters())
	if !tr.HeatersRequested() {
		t.Fatal("HeatersRequested() = false after TubeHeaters()")
	}

	// Construction must not draw the filaments on its own.
	before := len(tr.Segments())
	tr.DrawHeaters()
	after := len(tr.Segments())
	if after != before+2 {
		t.Fatalf("DrawHeaters added %d segments, want 2", after-before)
	}

	// Repeated calls do not stack filaments.
	tr.DrawHeaters()
	if len(tr.Segments()) != after {
		t.Error("second DrawHeaters call changed the segment list")
	}

	plain := NewTriode()
	if plain.HeatersRequested() {
		t.Error("HeatersRequested() = true without TubeHeaters()")
	}
}

func TestTriodeHalfEnvelopeArc(t *testing.T) {
	cases := []struct {
		half             Half
		theta1, theta2   float64
	}{
		{HalfNone, 0, 360},
		{HalfLeft, 90 - halfOverhang, 270 + halfOverhang},
		{HalfRight, 270 - halfOverhang, 90 + halfOverhang},
	}
	for _, tc := range cases {
		tr := NewTriode(TubeHalf(tc.half))
		arc, ok := tr.Segments()[0].(segments.Arc)
		if !ok {
			t.Fatalf("half %q: first segment is %T, want Arc", tc.half, tr.Segments()[0])
		}
		if arc.Theta1 != tc.theta1 || arc.Theta2 != tc.theta2 {
			t.Errorf("half %q: arc sweep (%v, %v), want (%v, %v)",
				tc.half, arc.Theta1, arc.Theta2, tc.theta1, tc.theta2)
		}
	}
}
