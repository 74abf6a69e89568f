package symbols

import (
	"fmt"

	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// TapSide names a transformer side for tap placement.
type TapSide string

const (
	TapPrimary   TapSide = "primary"
	TapLeft      TapSide = "left"
	TapSecondary TapSide = "secondary"
	TapRight     TapSide = "right"
)

// WindingPos addresses a turn position within one secondary winding.
type WindingPos struct {
	Winding int // Secondary winding index, 0-based
	Pos     int // Turn number from the top of that winding
}

// xformConfig holds the Transformer construction parameters.
type xformConfig struct {
	t1        int
	t2        int
	t2List    []int
	core      bool
	loop      bool
	leftTaps  map[string]int
	rightTaps map[string]WindingPos
}

// XformOption configures a Transformer.
type XformOption func(*xformConfig)

// XformPrimary sets the primary turn count (default 4).
func XformPrimary(turns int) XformOption {
	return func(c *xformConfig) { c.t1 = turns }
}

// XformSecondary sets the secondary turn count (default 4).
func XformSecondary(turns int) XformOption {
	return func(c *xformConfig) { c.t2 = turns }
}

// XformSecondaries splits the secondary into separately addressable
// windings with the given turn counts, overriding XformSecondary.
func XformSecondaries(turns ...int) XformOption {
	return func(c *xformConfig) { c.t2List = turns }
}

// XformNoCore omits the core lines between the windings.
func XformNoCore() XformOption {
	return func(c *xformConfig) { c.core = false }
}

// XformLoop draws the windings as cycloid loops instead of coil arcs.
func XformLoop() XformOption {
	return func(c *xformConfig) { c.loop = true }
}

// XformLeftTaps adds named taps on the primary winding at the given turn
// positions.
func XformLeftTaps(taps map[string]int) XformOption {
	return func(c *xformConfig) { c.leftTaps = taps }
}

// XformRightTaps adds named taps on the secondary windings.
func XformRightTaps(taps map[string]WindingPos) XformOption {
	return func(c *xformConfig) { c.rightTaps = taps }
}

// Transformer is a two-winding transformer symbol. The secondary can be
// split into multiple windings; taps may be added after construction.
//
// Anchors: p1, p2 on the primary; s1/s2 for a single secondary winding
// or s1_i/s2_i (1-based) when there are several; one anchor per tap.
type Transformer struct {
	Element
	ltapx  float64
	rtapx  float64
	ltop   float64
	rtop   float64
	indW   float64
	t2List []int
}

// NewTransformer builds a transformer symbol.
func NewTransformer(opts ...XformOption) *Transformer {
	cfg := xformConfig{t1: 4, t2: 4, core: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	indW := 0.4
	lbot := 0.0
	ltop := float64(cfg.t1) * indW

	t2List := cfg.t2List
	t2 := cfg.t2
	if len(t2List) == 0 {
		t2List = []int{t2}
	} else {
		t2 = sumInts(t2List) + len(t2List) - 1
	}
	rtop := (ltop+lbot)/2 + float64(t2)*indW/2
	rbot := (ltop+lbot)/2 - float64(t2)*indW/2

	// The gap widens to make room for loop-style windings and the core.
	indGap := 0.75
	if cfg.loop {
		indGap += 0.4
	}
	if cfg.core {
		indGap += 0.25
	}

	x := &Transformer{
		indW:   indW,
		rtapx:  indGap,
		t2List: t2List,
	}
	x.Element = newElement()

	// Primary winding.
	if cfg.loop {
		x.ltapx, ltop = x.drawLoops(cfg.t1, geom.Pt(0, 0), false)
	} else {
		x.drawCoils(cfg.t1, geom.Pt(0, ltop), indW, false)
	}

	// Secondary windings, stacked top to bottom without overlap.
	for j := range t2List {
		prior := sumInts(t2List[:j]) + j
		if cfg.loop {
			x.rtapx, rtop = x.drawLoops(
				t2List[j],
				geom.Pt(indGap, (ltop-lbot)/2-float64(prior)*indW/2),
				true,
			)
		} else {
			x.drawCoils(
				t2List[j],
				geom.Pt(indGap, rtop-float64(prior)*indW),
				indW,
				true,
			)
		}
	}

	if cfg.core {
		top := max(ltop, rtop)
		bot := min(lbot, rbot)
		center := indGap / 2
		coreW := indGap / 10
		x.add(segments.NewLine(geom.Pt(center-coreW, top), geom.Pt(center-coreW, bot)))
		x.add(segments.NewLine(geom.Pt(center+coreW, top), geom.Pt(center+coreW, bot)))
	}

	x.anchor("p1", geom.Pt(0, ltop))
	x.anchor("p2", geom.Pt(0, lbot))
	if len(t2List) == 1 {
		x.anchor("s1", geom.Pt(indGap, rtop))
		x.anchor("s2", geom.Pt(indGap, rbot))
	} else {
		for j := range t2List {
			prior := sumInts(t2List[:j]) + j
			x.anchor(fmt.Sprintf("s1_%d", j+1), geom.Pt(indGap, rtop-float64(prior)*indW))
			x.anchor(fmt.Sprintf("s2_%d", j+1), geom.Pt(indGap, rtop-float64(sumInts(t2List[:j+1])+j)*indW))
		}
	}

	x.ltop = ltop
	x.rtop = rtop

	for name, pos := range cfg.leftTaps {
		x.tap(name, pos, TapPrimary, 0)
	}
	for name, wp := range cfg.rightTaps {
		x.tap(name, wp.Pos, TapSecondary, wp.Winding)
	}
	return x
}

// drawCoils draws one side's winding as stacked half-circle arcs, one
// radius per turn, swept 270° to 90° (mirrored when flipped).
func (x *Transformer) drawCoils(n int, ofst geom.Point, radius float64, flip bool) {
	theta1, theta2 := 270.0, 90.0
	if flip {
		theta1, theta2 = theta2, theta1
	}
	for i := 0; i < n; i++ {
		x.add(segments.Arc{
			Center: geom.Pt(ofst.X, ofst.Y-(float64(i)*radius+radius/2)),
			Theta1: theta1,
			Theta2: theta2,
			Width:  radius,
			Height: radius,
		})
	}
}

// drawLoops draws one side's winding as a vertical cycloid and returns
// the tap reference x (the curve's leftmost point) and the winding top
// (the last point's y).
func (x *Transformer) drawLoops(n int, ofst geom.Point, flip bool) (tapx, top float64) {
	opts := geom.DefaultCycloid()
	opts.Loops = n
	opts.Offset = ofst
	opts.Vertical = true
	opts.Flip = flip
	c := geom.Cycloid(opts)

	tapx = c[0].X
	for _, p := range c {
		if p.X < tapx {
			tapx = p.X
		}
	}
	top = c[len(c)-1].Y
	x.add(segments.Line{Points: c})
	return tapx, top
}

// Tap appends a named anchor at a turn position counted from the top of
// the primary or of the first secondary winding. The side must be one of
// primary, left, secondary, or right.
func (x *Transformer) Tap(name string, pos int, side TapSide) error {
	return x.tap(name, pos, side, 0)
}

// SecondaryTap appends a named anchor at a turn position within the
// given secondary winding (0-based).
func (x *Transformer) SecondaryTap(name string, winding, pos int) error {
	return x.tap(name, pos, TapSecondary, winding)
}

// tap sets the anchor directly so a reused tap name overwrites the
// earlier position; only the side is validated.
func (x *Transformer) tap(name string, pos int, side TapSide, winding int) error {
	switch side {
	case TapPrimary, TapLeft:
		x.anchors[name] = geom.Pt(x.ltapx, x.ltop-float64(pos)*x.indW)
	case TapSecondary, TapRight:
		prior := sumInts(x.t2List[:winding]) + winding
		x.anchors[name] = geom.Pt(x.rtapx, x.rtop-float64(prior+pos)*x.indW)
	default:
		return fmt.Errorf("invalid tap side %q", string(side))
	}
	return nil
}

func sumInts(xs []int) int {
	total := 0
	for _, v := range xs {
		total += v
	}
	return total
}
