package symbols

import (
	"math"
	"reflect"
	"testing"

	"github.com/schemalab/symkit/pkg/segments"
)

func TestSpeakerAnchors(t *testing.T) {
	sp := NewSpeaker()
	want := []string{"in1", "in2"}
	if got := sp.AnchorNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("anchor names = %v, want %v", got, want)
	}
	in2, _ := sp.Anchor("in2")
	if in2.X != 0 || in2.Y != -0.5 {
		t.Errorf("in2 = %v, want (0, -0.5)", in2)
	}
	if drop := sp.Drop(); drop.Y != -0.5 {
		t.Errorf("drop = %v, want (0, -0.5)", drop)
	}

	// Cone body closed, horn outline open.
	var polys []segments.Poly
	for _, s := range sp.Segments() {
		if p, ok := s.(segments.Poly); ok {
			polys = append(polys, p)
		}
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	if polys[0].Open {
		t.Error("cone polygon should be closed")
	}
	if !polys[1].Open {
		t.Error("horn polygon should be open")
	}
}

func TestMicAnchors(t *testing.T) {
	m := NewMic()
	in1, _ := m.Anchor("in1")
	if in1.X != resHeight || in1.Y != 0 {
		t.Errorf("in1 = %v, want (%v, 0)", in1, resHeight)
	}

	// Capsule outline is a 180-degree arc.
	var arcs []segments.Arc
	for _, s := range m.Segments() {
		if a, ok := s.(segments.Arc); ok {
			arcs = append(arcs, a)
		}
	}
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(arcs))
	}
	if arcs[0].Theta1 != 270 || arcs[0].Theta2 != 90 {
		t.Errorf("arc sweep (%v, %v), want (270, 90)", arcs[0].Theta1, arcs[0].Theta2)
	}
}

func TestMotorPrimitives(t *testing.T) {
	m := NewMotor()

	var gapped, brackets int
	var circles []segments.Circle
	for _, s := range m.Segments() {
		switch seg := s.(type) {
		case segments.Line:
			if seg.HasGap() {
				gapped++
			} else {
				brackets++
			}
		case segments.Circle:
			circles = append(circles, seg)
		}
	}

	if gapped != 1 {
		t.Errorf("got %d gapped centerlines, want 1", gapped)
	}
	if brackets != 2 {
		t.Errorf("got %d bracket segments, want 2", brackets)
	}
	if len(circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(circles))
	}
	if c := circles[0]; c.Center.X != 0.5 || c.Center.Y != 0 || c.Radius != 0.5 {
		t.Errorf("body circle = %+v, want center (0.5, 0) radius 0.5", circles[0])
	}

	want := []string{"center", "end", "start"}
	if got := m.AnchorNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("anchor names = %v, want %v", got, want)
	}
}

func TestAudioJackAnchorSets(t *testing.T) {
	cases := []struct {
		name string
		opts []JackOption
		want []string
	}{
		{"plain", nil, []string{"sleeve", "tip"}},
		{"switch", []JackOption{JackTipSwitch()}, []string{"sleeve", "tip", "tipswitch"}},
		{"ring", []JackOption{JackRing()}, []string{"ring", "sleeve", "tip"}},
		{"ring+ringswitch", []JackOption{JackRing(), JackRingSwitch()},
			[]string{"ring", "ringswitch", "sleeve", "tip"}},
		{"ringswitch without ring", []JackOption{JackRingSwitch()}, []string{"sleeve", "tip"}},
		{"everything", []JackOption{JackRing(), JackRingSwitch(), JackTipSwitch()},
			[]string{"ring", "ringswitch", "sleeve", "tip", "tipswitch"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := NewAudioJack(tc.opts...)
			if got := j.AnchorNames(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("anchor names = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAudioJackSwitchOffsets(t *testing.T) {
	// A tip switch lifts the tip contact out of the way.
	j := NewAudioJack(JackTipSwitch())
	tip, _ := j.Anchor("tip")
	if math.Abs(tip.Y-1.2) > tol {
		t.Errorf("tip.Y with switch = %v, want 1.2", tip.Y)
	}

	// A ring switch pushes the sleeve down and the ring further down.
	j = NewAudioJack(JackRing(), JackRingSwitch())
	sleeve, _ := j.Anchor("sleeve")
	if math.Abs(sleeve.Y-(-0.55)) > tol {
		t.Errorf("sleeve.Y = %v, want -0.55", sleeve.Y)
	}
	ring, _ := j.Anchor("ring")
	if math.Abs(ring.Y-(-0.1)) > tol {
		t.Errorf("ring.Y = %v, want -0.1", ring.Y)
	}

	// Without the switches the base heights hold.
	j = NewAudioJack(JackRing())
	tip, _ = j.Anchor("tip")
	ring, _ = j.Anchor("ring")
	sleeve, _ = j.Anchor("sleeve")
	if tip.Y != 1.0 || ring.Y != 0.1 || sleeve.Y != -0.35 {
		t.Errorf("base heights tip %v ring %v sleeve %v, want 1.0 0.1 -0.35",
			tip.Y, ring.Y, sleeve.Y)
	}
}

func TestAudioJackSleeveExtend(t *testing.T) {
	j := NewAudioJack(JackNoSleeveExtend())
	sleeve, _ := j.Anchor("sleeve")
	if want := -2.0 - 0.2; sleeve.X != want {
		t.Errorf("sleeve.X = %v, want %v", sleeve.X, want)
	}

	j = NewAudioJack()
	sleeve, _ = j.Anchor("sleeve")
	if sleeve.X != 0 {
		t.Errorf("sleeve.X = %v, want 0", sleeve.X)
	}
}

func TestAudioJackDots(t *testing.T) {
	countCircles := func(e *Element) int {
		n := 0
		for _, s := range e.Segments() {
			if _, ok := s.(segments.Circle); ok {
				n++
			}
		}
		return n
	}

	if n := countCircles(NewAudioJack()); n != 2 {
		t.Errorf("default jack has %d dots, want 2", n)
	}
	if n := countCircles(NewAudioJack(JackNoDots())); n != 0 {
		t.Errorf("dotless jack has %d dots, want 0", n)
	}
	if n := countCircles(NewAudioJack(JackRing(), JackRingSwitch(), JackTipSwitch())); n != 5 {
		t.Errorf("full jack has %d dots, want 5", n)
	}

	// Hollow by default, filled when closed.
	for _, s := range NewAudioJack().Segments() {
		if c, ok := s.(segments.Circle); ok && c.Fill != segments.FillBackground {
			t.Errorf("open dot fill = %v, want FillBackground", c.Fill)
		}
	}
	for _, s := range NewAudioJack(JackClosed()).Segments() {
		if c, ok := s.(segments.Circle); ok && c.Fill != segments.FillSolid {
			t.Errorf("closed dot fill = %v, want FillSolid", c.Fill)
		}
	}
}
