package symbols

import (
	"math"

	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// Tube envelope dimensions. Everything else in the family derives from
// the base circle diameter.
const (
	trD     = 2.5
	trR     = trD / 2
	gridLen = trD / 2

	// Electrode leads sit on chords of the envelope circle, anodeH above
	// and cathodeH below its center.
	anodeH   = trR / 2
	cathodeH = anodeH

	// Half-envelope arcs sweep this many degrees past the vertical split
	// so the two halves of a shared envelope visually overlap.
	halfOverhang = 12.5

	// Lobe separation of a dual triode; the pentode reuses it as the
	// vertical gap between its two envelope circles.
	dualTrGap = trR / 2
	pentGap   = dualTrGap
)

// Chord lengths and the cathode tail follow from the circle relations:
// each lead endpoint lies on the envelope.
var (
	anodeLen    = math.Sqrt(trR*trR - anodeH*anodeH)
	cathodeLen  = anodeLen
	cathodeGap  = math.Sqrt(trR*trR - (cathodeLen/2)*(cathodeLen/2))
	cathodeTail = (cathodeGap - cathodeH) / 2
)

// Half selects which half of a shared envelope a tube symbol shows.
type Half string

const (
	HalfNone  Half = ""
	HalfLeft  Half = "left"
	HalfRight Half = "right"
)

// sign returns the horizontal mirror sign for the half: -1 for left or
// full envelopes, +1 for right. Left and right halves are exact mirror
// images about the envelope's vertical centerline.
func (h Half) sign() float64 {
	if h == HalfRight {
		return 1
	}
	return -1
}

// tubeConfig holds the construction parameters shared by the tube family.
type tubeConfig struct {
	half    Half
	pins    PinNumbers
	heaters bool
}

// TubeOption configures a tube-family element.
type TubeOption func(*tubeConfig)

// TubeHalf draws only the given half of the envelope.
func TubeHalf(h Half) TubeOption {
	return func(c *tubeConfig) { c.half = h }
}

// TubePins overlays pin-number labels at each electrode. A key that is
// present with an empty value still draws a blank label.
func TubePins(p PinNumbers) TubeOption {
	return func(c *tubeConfig) { c.pins = p }
}

// TubeHeaters marks the element as wanting heater filaments. The flag is
// advisory: filaments appear only when DrawHeaters is invoked.
func TubeHeaters() TubeOption {
	return func(c *tubeConfig) { c.heaters = true }
}

// tube is the shared base of the tube family: the element plus the
// heater-filament state.
type tube struct {
	Element
	heaters      bool
	heaterCenter geom.Point
	heatersDrawn bool
}

// HeatersRequested reports whether the element was constructed with
// TubeHeaters. Construction never draws the filaments; callers that want
// them visible invoke DrawHeaters.
func (t *tube) HeatersRequested() bool {
	return t.heaters
}

// DrawHeaters appends the symmetric V-shaped filament pair at the bottom
// of the envelope. Calling it more than once is a no-op.
func (t *tube) DrawHeaters() {
	if t.heatersDrawn {
		return
	}
	t.heatersDrawn = true
	cx := t.heaterCenter.X
	cy := t.heaterCenter.Y
	t.add(segments.NewLine(geom.Pt(cx-0.35, cy+0.4), geom.Pt(cx, cy)))
	t.add(segments.NewLine(geom.Pt(cx, cy), geom.Pt(cx+0.35, cy+0.4)))
}

// heaterLabelPoints returns where heater pin labels sit, just above the
// filament arm tips.
func (t *tube) heaterLabelPoints() (geom.Point, geom.Point) {
	cx := t.heaterCenter.X
	cy := t.heaterCenter.Y
	return geom.Pt(cx-0.35, cy+0.6), geom.Pt(cx+0.35, cy+0.6)
}

// lobeAnchors is the electrode geometry of one triode lobe.
type lobeAnchors struct {
	g, k, a geom.Point
}

// drawTriodeLobe draws the grid, anode, and cathode leads of one triode
// lobe centered at x = cx, mirrored by sign (-1 puts the grid and
// cathode leads on the left, +1 on the right).
func drawTriodeLobe(e *Element, cx, sign float64) lobeAnchors {
	// Grid: dashed chord through the center with a solid external lead.
	e.add(segments.Line{
		Points: []geom.Point{
			geom.Pt(cx-gridLen/2, trR),
			geom.Pt(cx+gridLen/2, trR),
		},
		Style: segments.Dashed,
	})
	gridX := cx + sign*trR
	e.add(segments.NewLine(geom.Pt(gridX, trR), geom.Pt(cx+sign*(gridLen/2+0.1), trR)))

	// Anode: chord above the center with a lead to the envelope top.
	e.add(segments.NewLine(
		geom.Pt(cx-anodeLen/2, trR+anodeH),
		geom.Pt(cx+anodeLen/2, trR+anodeH),
	))
	e.add(segments.NewLine(geom.Pt(cx, trR+anodeH), geom.Pt(cx, trD)))

	// Cathode: chord below the center. The grid-side end drops to the
	// envelope (the cathode lead); the far end gets the short tail.
	e.add(segments.NewLine(
		geom.Pt(cx-cathodeLen/2, trR-cathodeH),
		geom.Pt(cx+cathodeLen/2, trR-cathodeH),
	))
	kx := cx + sign*cathodeLen/2
	e.add(segments.NewLine(geom.Pt(kx, trR-cathodeH), geom.Pt(kx, trR-cathodeGap)))
	tailX := cx - sign*cathodeLen/2
	e.add(segments.NewLine(
		geom.Pt(tailX, trR-cathodeH),
		geom.Pt(tailX, trR-cathodeH-cathodeTail),
	))

	return lobeAnchors{
		g: geom.Pt(gridX, trR),
		k: geom.Pt(kx, trR-cathodeGap),
		a: geom.Pt(cx, trD),
	}
}

// lobePinLabels overlays the g/k/a pin numbers of one lobe. The grid
// label sits at the far end of the dotted chord, opposite the lead.
func lobePinLabels(e *Element, cx, sign float64, pins PinNumbers, gKey, kKey, aKey string) {
	if v, ok := pins[gKey]; ok {
		e.add(segments.Text{Position: geom.Pt(cx-sign*(gridLen/2+0.2), trR), Label: v})
	}
	if v, ok := pins[aKey]; ok {
		e.add(segments.Text{Position: geom.Pt(cx+0.2, trR+anodeH+0.3), Label: v})
	}
	if v, ok := pins[kKey]; ok {
		e.add(segments.Text{Position: geom.Pt(cx, trR-cathodeH-0.3), Label: v})
	}
}

// Triode is a single triode, optionally drawn as the left or right half
// of a shared envelope.
//
// Anchors: g (grid), k (cathode), a (anode).
type Triode struct {
	tube
	half Half
}

// NewTriode builds a triode vacuum tube.
func NewTriode(opts ...TubeOption) *Triode {
	var cfg tubeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Triode{half: cfg.half}
	t.Element = newElement()
	t.heaters = cfg.heaters
	t.heaterCenter = geom.Pt(trR, 0.15)

	// Envelope: a full circle, or a half arc swept a little past the
	// vertical split so the half overlaps its would-be other half.
	theta1, theta2 := 0.0, 360.0
	switch cfg.half {
	case HalfLeft:
		theta1, theta2 = 90-halfOverhang, 270+halfOverhang
	case HalfRight:
		theta1, theta2 = 270-halfOverhang, 90+halfOverhang
	}
	t.add(segments.Arc{
		Center: geom.Pt(trR, trR),
		Width:  trD,
		Height: trD,
		Theta1: theta1,
		Theta2: theta2,
	})

	sign := cfg.half.sign()
	lobe := drawTriodeLobe(&t.Element, trR, sign)

	t.anchor("g", lobe.g)
	t.anchor("k", lobe.k)
	t.anchor("a", lobe.a)
	t.drop = geom.Pt(trD, 0)

	if cfg.pins != nil {
		lobePinLabels(&t.Element, trR, sign, cfg.pins, "g", "k", "a")
	}
	return t
}

// Half returns which envelope half the triode draws.
func (t *Triode) Half() Half {
	return t.half
}

// DualTriode is a twin triode in one envelope: two mirrored lobes joined
// across a gap.
//
// Anchors: g1, k1, a1 (left lobe), g2, k2, a2 (right lobe).
type DualTriode struct {
	tube
}

// NewDualTriode builds a dual triode vacuum tube.
func NewDualTriode(opts ...TubeOption) *DualTriode {
	var cfg tubeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c1 := trR
	c2 := trR + dualTrGap

	t := &DualTriode{}
	t.Element = newElement()
	t.heaters = cfg.heaters
	t.heaterCenter = geom.Pt((c1+c2)/2, 0.15)

	// Envelope: two half arcs joined by top and bottom runs.
	t.add(segments.Arc{
		Center: geom.Pt(c1, trR),
		Width:  trD, Height: trD,
		Theta1: 90 - halfOverhang, Theta2: 270 + halfOverhang,
	})
	t.add(segments.Arc{
		Center: geom.Pt(c2, trR),
		Width:  trD, Height: trD,
		Theta1: 270 - halfOverhang, Theta2: 90 + halfOverhang,
	})
	t.add(segments.NewLine(geom.Pt(c1, trD), geom.Pt(c2, trD)))
	t.add(segments.NewLine(geom.Pt(c1, 0), geom.Pt(c2, 0)))

	left := drawTriodeLobe(&t.Element, c1, -1)
	right := drawTriodeLobe(&t.Element, c2, 1)

	t.anchor("g1", left.g)
	t.anchor("k1", left.k)
	t.anchor("a1", left.a)
	t.anchor("g2", right.g)
	t.anchor("k2", right.k)
	t.anchor("a2", right.a)
	t.drop = geom.Pt(trD+dualTrGap, 0)

	if cfg.pins != nil {
		lobePinLabels(&t.Element, c1, -1, cfg.pins, "g1", "k1", "a1")
		lobePinLabels(&t.Element, c2, 1, cfg.pins, "g2", "k2", "a2")
		h1, h2 := t.heaterLabelPoints()
		if v, ok := cfg.pins["h1"]; ok {
			t.add(segments.Text{Position: h1, Label: v})
		}
		if v, ok := cfg.pins["h2"]; ok {
			t.add(segments.Text{Position: h2, Label: v})
		}
	}
	return t
}

// Pentode is a five-electrode tube: a tall envelope of two stacked
// circles with control, screen, and suppressor grids.
//
// Anchors: g1 (control), g2 (screen), g3 (suppressor), k, a.
type Pentode struct {
	tube
}

// NewPentode builds a pentode vacuum tube.
func NewPentode(opts ...TubeOption) *Pentode {
	var cfg tubeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	yb := trR           // bottom circle center height
	yt := trR + pentGap // top circle center height

	t := &Pentode{}
	t.Element = newElement()
	t.heaters = cfg.heaters
	t.heaterCenter = geom.Pt(trR, 0.15)

	// Envelope: lower and upper half circles joined by vertical sides.
	t.add(segments.Arc{
		Center: geom.Pt(trR, yb),
		Width:  trD, Height: trD,
		Theta1: 180, Theta2: 360,
	})
	t.add(segments.Arc{
		Center: geom.Pt(trR, yt),
		Width:  trD, Height: trD,
		Theta1: 0, Theta2: 180,
	})
	t.add(segments.NewLine(geom.Pt(0, yb), geom.Pt(0, yt)))
	t.add(segments.NewLine(geom.Pt(trD, yb), geom.Pt(trD, yt)))

	// Three dashed grids: control on the bottom circle's midline, screen
	// at the envelope midpoint, suppressor on the top circle's midline.
	gridYs := [3]float64{yb, (yb + yt) / 2, yt}
	for _, y := range gridYs {
		t.add(segments.Line{
			Points: []geom.Point{
				geom.Pt(trR-gridLen/2, y),
				geom.Pt(trR+gridLen/2, y),
			},
			Style: segments.Dashed,
		})
		t.add(segments.NewLine(geom.Pt(0, y), geom.Pt(trR-gridLen/2-0.1, y)))
	}

	// Anode above the top circle.
	t.add(segments.NewLine(
		geom.Pt(trR-anodeLen/2, yt+anodeH),
		geom.Pt(trR+anodeLen/2, yt+anodeH),
	))
	t.add(segments.NewLine(geom.Pt(trR, yt+anodeH), geom.Pt(trR, yt+trR)))

	// Cathode below the bottom circle, same chord and tails as a triode.
	t.add(segments.NewLine(
		geom.Pt(trR-cathodeLen/2, yb-cathodeH),
		geom.Pt(trR+cathodeLen/2, yb-cathodeH),
	))
	t.add(segments.NewLine(
		geom.Pt(trR-cathodeLen/2, yb-cathodeH),
		geom.Pt(trR-cathodeLen/2, yb-cathodeGap),
	))
	t.add(segments.NewLine(
		geom.Pt(trR+cathodeLen/2, yb-cathodeH),
		geom.Pt(trR+cathodeLen/2, yb-cathodeH-cathodeTail),
	))

	t.anchor("g1", geom.Pt(0, gridYs[0]))
	t.anchor("g2", geom.Pt(0, gridYs[1]))
	t.anchor("g3", geom.Pt(0, gridYs[2]))
	t.anchor("k", geom.Pt(trR-cathodeLen/2, yb-cathodeGap))
	t.anchor("a", geom.Pt(trR, yt+trR))
	t.drop = geom.Pt(trD, 0)

	if cfg.pins != nil {
		for i, key := range []string{"g1", "g2", "g3"} {
			if v, ok := cfg.pins[key]; ok {
				t.add(segments.Text{Position: geom.Pt(trR+gridLen/2+0.2, gridYs[i]), Label: v})
			}
		}
		if v, ok := cfg.pins["a"]; ok {
			t.add(segments.Text{Position: geom.Pt(trR+0.2, yt+anodeH+0.3), Label: v})
		}
		if v, ok := cfg.pins["k"]; ok {
			t.add(segments.Text{Position: geom.Pt(trR, yb-cathodeH-0.3), Label: v})
		}
	}
	return t
}
