// Package drawing chains placed symbols into one schematic picture.
// Each placement transforms an element's local frame into world
// coordinates and advances the chain position by the element's drop
// offset, so consecutive symbols connect the way the generators intend.
package drawing

import (
	"fmt"
	"strings"

	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
	"github.com/schemalab/symkit/pkg/symbols"
)

// Placed is one symbol instance with its world placement.
type Placed struct {
	Name      string
	Symbol    symbols.Symbol
	Transform geom.Transform
}

// Drawing is an ordered collection of placed symbols.
type Drawing struct {
	placed []Placed
	byName map[string]int
	pos    geom.Point
}

// New creates an empty drawing with the chain position at the origin.
func New() *Drawing {
	return &Drawing{byName: make(map[string]int)}
}

// placement holds the placement parameters of one Add call.
type placement struct {
	at      geom.Point
	atSet   bool
	rotate  float64
	mirrorX bool
}

// PlaceOption configures one placement.
type PlaceOption func(*placement)

// At places the symbol at an explicit world position instead of the
// current chain position.
func At(p geom.Point) PlaceOption {
	return func(pl *placement) {
		pl.at = p
		pl.atSet = true
	}
}

// Rotate rotates the placement counter-clockwise, in degrees.
func Rotate(degrees float64) PlaceOption {
	return func(pl *placement) { pl.rotate = degrees }
}

// MirrorX mirrors the placement horizontally about its origin.
func MirrorX() PlaceOption {
	return func(pl *placement) { pl.mirrorX = true }
}

// Add places a symbol under a unique instance name and advances the
// chain position by the symbol's transformed drop offset.
func (d *Drawing) Add(name string, sym symbols.Symbol, opts ...PlaceOption) error {
	if name == "" {
		return fmt.Errorf("empty instance name")
	}
	if _, ok := d.byName[name]; ok {
		return fmt.Errorf("duplicate instance name %q", name)
	}

	pl := placement{at: d.pos}
	for _, opt := range opts {
		opt(&pl)
	}

	tr := geom.Identity()
	if pl.mirrorX {
		tr = tr.Scale(-1, 1)
	}
	tr = tr.Rotate(pl.rotate).Translate(pl.at.X, pl.at.Y)

	d.byName[name] = len(d.placed)
	d.placed = append(d.placed, Placed{Name: name, Symbol: sym, Transform: tr})
	d.pos = tr.Apply(sym.Drop())
	return nil
}

// Pos returns the current chain position.
func (d *Drawing) Pos() geom.Point {
	return d.pos
}

// Placed returns the placements in draw order.
func (d *Drawing) Placed() []Placed {
	return d.placed
}

// Symbol returns a placed symbol by instance name.
func (d *Drawing) Symbol(name string) (symbols.Symbol, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.placed[i].Symbol, true
}

// Segments returns every placed primitive in world coordinates, in
// draw order.
func (d *Drawing) Segments() []segments.Segment {
	var out []segments.Segment
	for _, p := range d.placed {
		for _, s := range p.Symbol.Segments() {
			out = append(out, s.Transform(p.Transform))
		}
	}
	return out
}

// Anchor resolves a global anchor reference of the form
// "instance.anchor" to world coordinates.
func (d *Drawing) Anchor(ref string) (geom.Point, error) {
	name, anchor, ok := strings.Cut(ref, ".")
	if !ok {
		return geom.Point{}, fmt.Errorf("anchor reference %q is not instance.anchor", ref)
	}
	i, found := d.byName[name]
	if !found {
		return geom.Point{}, fmt.Errorf("unknown instance %q", name)
	}
	p := d.placed[i]
	local, found := p.Symbol.Anchor(anchor)
	if !found {
		return geom.Point{}, fmt.Errorf("instance %q has no anchor %q", name, anchor)
	}
	return p.Transform.Apply(local), nil
}

// Bounds returns the world bounding box of the whole drawing.
func (d *Drawing) Bounds() segments.BoundingBox {
	return segments.Bounds(d.Segments())
}
