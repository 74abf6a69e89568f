// Package symbols implements parametric schematic-symbol generators.
// Each constructor performs a pure geometric computation and returns a
// fully built element: an ordered list of drawing primitives, a set of
// named anchor points, and the drop offset where a chained element
// should begin.
package symbols

import (
	"fmt"
	"sort"

	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// resHeight is the resistor half-height, the base unit many of the
// audio-element offsets are expressed in.
const resHeight = 0.25

// Symbol is the read-only view of a built element consumed by renderers,
// exporters, and the drawing composer.
type Symbol interface {
	// Segments returns the drawing primitives in draw (z) order.
	Segments() []segments.Segment
	// Anchors returns the named connection points in the local frame.
	Anchors() map[string]geom.Point
	// Anchor looks up a single anchor by name.
	Anchor(name string) (geom.Point, bool)
	// Drop returns the local-frame point where a chained element starts.
	Drop() geom.Point
}

// PinNumbers maps anchor names to displayable pin labels. A key that is
// present with an empty value still produces a (blank) label; an absent
// key produces no label at all.
type PinNumbers map[string]string

// Element is the common state of every symbol: ordered primitives, named
// anchors, and the drop offset. Constructors populate it once; it is
// immutable afterward except for Transformer taps, which append anchors.
type Element struct {
	segs    []segments.Segment
	anchors map[string]geom.Point
	drop    geom.Point
}

func newElement() Element {
	return Element{anchors: make(map[string]geom.Point)}
}

// add appends a primitive, preserving draw order.
func (e *Element) add(s segments.Segment) {
	e.segs = append(e.segs, s)
}

// anchor registers a named point. Anchor names are unique per element;
// a duplicate is a bug in the generator, not caller input.
func (e *Element) anchor(name string, p geom.Point) {
	if _, ok := e.anchors[name]; ok {
		panic(fmt.Sprintf("symbols: duplicate anchor %q", name))
	}
	e.anchors[name] = p
}

// Segments returns the element's primitives in draw order.
func (e *Element) Segments() []segments.Segment {
	return e.segs
}

// Anchors returns a copy of the anchor map.
func (e *Element) Anchors() map[string]geom.Point {
	out := make(map[string]geom.Point, len(e.anchors))
	for k, v := range e.anchors {
		out[k] = v
	}
	return out
}

// Anchor looks up a single anchor by name.
func (e *Element) Anchor(name string) (geom.Point, bool) {
	p, ok := e.anchors[name]
	return p, ok
}

// AnchorNames returns the anchor names in sorted order.
func (e *Element) AnchorNames() []string {
	names := make([]string, 0, len(e.anchors))
	for k := range e.anchors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Drop returns the chaining offset.
func (e *Element) Drop() geom.Point {
	return e.drop
}

// Bounds returns the element's bounding box in its local frame.
func (e *Element) Bounds() segments.BoundingBox {
	return segments.Bounds(e.segs)
}

// twoTerm seeds the standard two-terminal layout: the body occupies
// x in [0,1] on the centerline, leads extend outward from start and end.
func twoTerm(e *Element) {
	e.anchor("start", geom.Pt(0, 0))
	e.anchor("end", geom.Pt(1, 0))
	e.anchor("center", geom.Pt(0.5, 0))
	e.drop = geom.Pt(1, 0)
}
