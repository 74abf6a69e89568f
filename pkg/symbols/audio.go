package symbols

import (
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// NewSpeaker builds a speaker: two leads, a trapezoid cone body, and an
// open horn outline.
//
// Anchors: in1, in2.
func NewSpeaker() *Element {
	e := newElement()
	sph := 0.5

	e.add(segments.NewLine(geom.Pt(0, 0), geom.Pt(resHeight, 0)))
	e.add(segments.NewLine(geom.Pt(0, -sph), geom.Pt(resHeight, -sph)))
	e.add(segments.Poly{Points: []geom.Point{
		geom.Pt(resHeight, sph/2),
		geom.Pt(resHeight, -sph*1.5),
		geom.Pt(resHeight*2, -sph*1.5),
		geom.Pt(resHeight*2, sph/2),
	}})
	e.add(segments.Poly{Points: []geom.Point{
		geom.Pt(resHeight*2, sph/2),
		geom.Pt(resHeight*3.5, sph*1.25),
		geom.Pt(resHeight*3.5, -sph*2.25),
		geom.Pt(resHeight*2, -sph*1.5),
	}, Open: true})

	e.anchor("in1", geom.Pt(0, 0))
	e.anchor("in2", geom.Pt(0, -sph))
	e.drop = geom.Pt(0, -sph)
	return &e
}

// NewMic builds a microphone: two leads, a vertical flat, and a
// half-circle capsule outline.
//
// Anchors: in1, in2.
func NewMic() *Element {
	e := newElement()
	sph := 0.5

	e.add(segments.NewLine(geom.Pt(0, 0), geom.Pt(resHeight, 0)))       // Upper lead
	e.add(segments.NewLine(geom.Pt(0, -sph), geom.Pt(resHeight, -sph))) // Lower lead
	e.add(segments.NewLine( // Vertical flat
		geom.Pt(-resHeight*2, resHeight), geom.Pt(-resHeight*2, -resHeight*3)))
	e.add(segments.Arc{
		Center: geom.Pt(-resHeight*2, -resHeight),
		Theta1: 270,
		Theta2: 90,
		Width:  resHeight * 4,
		Height: resHeight * 4,
	})

	e.anchor("in1", geom.Pt(resHeight, 0))
	e.anchor("in2", geom.Pt(resHeight, -sph))
	e.drop = geom.Pt(0, -sph)
	return &e
}

// jackConfig holds the AudioJack construction parameters.
type jackConfig struct {
	radius       float64
	ring         bool
	ringSwitch   bool
	dots         bool
	tipSwitch    bool
	open         bool
	extendSleeve bool
}

// JackOption configures an AudioJack.
type JackOption func(*jackConfig)

// JackRing adds the third (ring) conductor contact.
func JackRing() JackOption {
	return func(c *jackConfig) { c.ring = true }
}

// JackRingSwitch adds a switch on the ring contact. It only takes effect
// together with JackRing.
func JackRingSwitch() JackOption {
	return func(c *jackConfig) { c.ringSwitch = true }
}

// JackTipSwitch adds a switch on the tip contact.
func JackTipSwitch() JackOption {
	return func(c *jackConfig) { c.tipSwitch = true }
}

// JackNoDots suppresses the contact-point dots.
func JackNoDots() JackOption {
	return func(c *jackConfig) { c.dots = false }
}

// JackDotRadius sets the contact-dot radius (default 0.075).
func JackDotRadius(r float64) JackOption {
	return func(c *jackConfig) { c.radius = r }
}

// JackClosed renders the contact dots filled instead of hollow.
func JackClosed() JackOption {
	return func(c *jackConfig) { c.open = false }
}

// JackNoSleeveExtend keeps the sleeve lead short of the right edge.
func JackNoSleeveExtend() JackOption {
	return func(c *jackConfig) { c.extendSleeve = false }
}

// NewAudioJack builds a phone-jack connector with two or three conductors
// and optional switch contacts.
//
// Anchors: tip and sleeve always; ring with JackRing; tipswitch with
// JackTipSwitch; ringswitch with JackRing plus JackRingSwitch.
func NewAudioJack(opts ...JackOption) *Element {
	cfg := jackConfig{
		radius:       0.075,
		dots:         true,
		open:         true,
		extendSleeve: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	fill := segments.FillSolid
	if cfg.open {
		fill = segments.FillBackground
	}

	length := 2.0
	ringLen := 0.75
	tipLen := 0.55
	sWidth := 0.2
	sleeveHeight := 1.0
	tipY := 1.0
	ringY := 0.1
	sleeveY := 0.35
	swDY := 0.4
	swLen := 0.5
	radius := cfg.radius

	// Switch contacts crowd their neighbors, so base heights shift to
	// keep clearance between contacts.
	if cfg.tipSwitch {
		tipY += 0.2
	}
	if cfg.ring && cfg.ringSwitch {
		sleeveY += 0.2
		ringY -= 0.2
	}

	sAnchorX := 0.0
	if !cfg.extendSleeve {
		sAnchorX = -length - sWidth
	}

	e := newElement()

	if cfg.ring {
		if cfg.dots {
			if cfg.extendSleeve {
				e.add(segments.Circle{Center: geom.Pt(0, -sleeveY), Radius: radius, Fill: fill, ZOrder: 4})
			} else {
				e.add(segments.Circle{Center: geom.Pt(-length-sWidth, -sleeveY), Radius: radius, Fill: fill, ZOrder: 4})
			}
		}
		if cfg.extendSleeve {
			e.add(segments.NewLine(geom.Pt(0, -sleeveY), geom.Pt(-length, -sleeveY)))
		}
		e.add(segments.NewLine(
			geom.Pt(-length, 0),
			geom.Pt(-length, sleeveHeight),
			geom.Pt(-length-sWidth, sleeveHeight),
			geom.Pt(-length-sWidth, 0),
			geom.Pt(-length, 0),
		))
		e.anchor("sleeve", geom.Pt(sAnchorX, -sleeveY))

		if cfg.dots {
			e.add(segments.Circle{Center: geom.Pt(0, ringY), Radius: radius, Fill: fill, ZOrder: 4})
		}
		e.add(segments.NewLine(
			geom.Pt(-radius, ringY),
			geom.Pt(-length*0.75, ringY),
			geom.Pt(-length*ringLen-2*radius, ringY+2*radius),
			geom.Pt(-length*ringLen-radius*4, ringY),
		))
		e.anchor("ring", geom.Pt(0, ringY))
	} else {
		if cfg.dots && cfg.extendSleeve {
			e.add(segments.Circle{Center: geom.Pt(0, 0), Radius: radius, Fill: fill, ZOrder: 4})
		}
		if cfg.extendSleeve {
			e.add(segments.NewLine(geom.Pt(-radius, 0), geom.Pt(-length+sWidth, 0)))
		}
		e.add(segments.NewLine(
			geom.Pt(-length+sWidth, 0),
			geom.Pt(-length, 0),
			geom.Pt(-length, sleeveHeight),
			geom.Pt(-length+sWidth, sleeveHeight),
			geom.Pt(-length+sWidth, 0),
		))
		e.anchor("sleeve", geom.Pt(sAnchorX, 0))
	}

	if cfg.dots {
		e.add(segments.Circle{Center: geom.Pt(0, tipY), Radius: radius, Fill: fill, ZOrder: 4})
	}
	e.add(segments.NewLine(
		geom.Pt(-radius, tipY),
		geom.Pt(-length*0.55, tipY),
		geom.Pt(-length*tipLen-2*radius, tipY-2*radius),
		geom.Pt(-length*tipLen-radius*4, tipY),
	))
	e.anchor("tip", geom.Pt(0, tipY))

	if cfg.tipSwitch {
		if cfg.dots {
			e.add(segments.Circle{Center: geom.Pt(0, tipY-swDY), Radius: radius, Fill: fill, ZOrder: 4})
		}
		e.add(segments.NewLine(geom.Pt(0, tipY-swDY), geom.Pt(-swLen, tipY-swDY)))
		e.add(segments.Line{
			Points: []geom.Point{geom.Pt(-swLen, tipY-swDY), geom.Pt(-swLen, tipY)},
			Arrow:  segments.ArrowForward,
		})
		e.anchor("tipswitch", geom.Pt(0, tipY-swDY))
	}

	if cfg.ring && cfg.ringSwitch {
		if cfg.dots {
			e.add(segments.Circle{Center: geom.Pt(0, ringY+swDY), Radius: radius, Fill: fill, ZOrder: 4})
		}
		e.add(segments.NewLine(geom.Pt(0, ringY+swDY), geom.Pt(-swLen, ringY+swDY)))
		e.add(segments.Line{
			Points: []geom.Point{geom.Pt(-swLen, ringY+swDY), geom.Pt(-swLen, ringY)},
			Arrow:  segments.ArrowForward,
		})
		e.anchor("ringswitch", geom.Pt(0, ringY+swDY))
	}

	return &e
}
