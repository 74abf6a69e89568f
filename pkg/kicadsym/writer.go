// Package kicadsym serializes generated symbols into the KiCad symbol
// library s-expression format (.kicad_sym). Coordinates are converted
// from drawing units to millimetres; anchors become zero-length passive
// pins so the exported symbol stays wireable in the schematic editor.
package kicadsym

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
	"github.com/schemalab/symkit/pkg/symbols"
)

const (
	formatVersion = 20231120
	generatorName = "symkit"

	// One drawing unit maps to a 2.54 mm grid step.
	unitScale = 2.54

	strokeWidth = 0.254
	fontSize    = 1.27
)

// Entry pairs a library symbol name with its geometry.
type Entry struct {
	Name   string
	Symbol symbols.Symbol
}

// WriteLibrary writes a complete .kicad_sym library containing the given
// symbols, in order.
func WriteLibrary(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("kicadsym: symbol with empty name")
		}
	}
	b := newBuilder()
	b.open("kicad_symbol_lib")
	b.line("(version %d)", formatVersion)
	b.line("(generator %q)", generatorName)
	for _, e := range entries {
		writeSymbol(b, e.Name, e.Symbol)
	}
	b.closeNode()
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSymbol writes a single-symbol library.
func WriteSymbol(w io.Writer, name string, sym symbols.Symbol) error {
	return WriteLibrary(w, []Entry{{Name: name, Symbol: sym}})
}

func writeSymbol(b *builder, name string, sym symbols.Symbol) {
	b.open("symbol %q", name)
	b.line("(pin_names (offset %s))", num(0.1))
	b.line("(in_bom yes)")
	b.line("(on_board yes)")

	// Body graphics live in the _0_1 sub-symbol, pins in _1_1, following
	// the unit/body-style naming the schematic editor expects.
	b.open("symbol %q", name+"_0_1")
	for _, seg := range sym.Segments() {
		writeSegment(b, seg)
	}
	b.closeNode()

	b.open("symbol %q", name+"_1_1")
	writePins(b, sym)
	b.closeNode()

	b.closeNode()
}

func writeSegment(b *builder, seg segments.Segment) {
	switch s := seg.(type) {
	case segments.Line:
		for _, run := range s.Runs() {
			writePolyline(b, run, false, segments.FillNone, s.Style)
		}
	case segments.Poly:
		writePolyline(b, s.Points, !s.Open, s.Fill, s.Style)
	case segments.Circle:
		b.open("circle")
		b.line("(center %s %s)", num(s.Center.X), num(s.Center.Y))
		b.line("(radius %s)", num(s.Radius))
		writeStroke(b, s.Style)
		writeFill(b, s.Fill)
		b.closeNode()
	case segments.Arc:
		writeArc(b, s)
	case segments.Text:
		b.open("text %q", s.Label)
		b.line("(at %s %s 0)", num(s.Position.X), num(s.Position.Y))
		b.line("(effects (font (size %s %s)))", mm(fontSize), mm(fontSize))
		b.closeNode()
	}
}

func writePolyline(b *builder, pts []geom.Point, closed bool, fill segments.Fill, style segments.LineStyle) {
	if len(pts) < 2 {
		return
	}
	b.open("polyline")
	b.open("pts")
	for _, p := range pts {
		b.line("(xy %s %s)", num(p.X), num(p.Y))
	}
	if closed {
		b.line("(xy %s %s)", num(pts[0].X), num(pts[0].Y))
	}
	b.closeNode()
	writeStroke(b, style)
	writeFill(b, fill)
	b.closeNode()
}

// writeArc emits the arc in KiCad's three-point form. The sweep runs
// counterclockwise from Theta1 to Theta2.
func writeArc(b *builder, a segments.Arc) {
	t2 := a.Theta2
	for t2 <= a.Theta1 {
		t2 += 360
	}
	start := arcPoint(a, a.Theta1)
	mid := arcPoint(a, (a.Theta1+t2)/2)
	end := arcPoint(a, t2)

	b.open("arc")
	b.line("(start %s %s)", num(start.X), num(start.Y))
	b.line("(mid %s %s)", num(mid.X), num(mid.Y))
	b.line("(end %s %s)", num(end.X), num(end.Y))
	writeStroke(b, a.Style)
	writeFill(b, segments.FillNone)
	b.closeNode()
}

// arcPoint evaluates the ellipse at parameter angle theta (degrees),
// honoring the arc's own rotation.
func arcPoint(a segments.Arc, theta float64) geom.Point {
	t := theta * math.Pi / 180
	x := a.Width / 2 * math.Cos(t)
	y := a.Height / 2 * math.Sin(t)
	r := a.Rotation * math.Pi / 180
	return geom.Pt(
		a.Center.X+x*math.Cos(r)-y*math.Sin(r),
		a.Center.Y+x*math.Sin(r)+y*math.Cos(r),
	)
}

func writePins(b *builder, sym symbols.Symbol) {
	anchors := sym.Anchors()
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)

	number := 1
	for _, name := range names {
		if name == "center" || name == "drop" {
			continue
		}
		p := anchors[name]
		b.open("pin passive line")
		b.line("(at %s %s 0)", num(p.X), num(p.Y))
		b.line("(length 0)")
		b.line("(name %q (effects (font (size %s %s))))", name, mm(fontSize), mm(fontSize))
		b.line("(number %q (effects (font (size %s %s))))", strconv.Itoa(number), mm(fontSize), mm(fontSize))
		b.closeNode()
		number++
	}
}

func writeStroke(b *builder, style segments.LineStyle) {
	kind := "default"
	switch style {
	case segments.Dashed:
		kind = "dash"
	case segments.Dotted:
		kind = "dot"
	}
	b.line("(stroke (width %s) (type %s))", mm(strokeWidth), kind)
}

func writeFill(b *builder, fill segments.Fill) {
	kind := "none"
	switch fill {
	case segments.FillBackground:
		kind = "background"
	case segments.FillSolid:
		kind = "outline"
	}
	b.line("(fill (type %s))", kind)
}

// num converts a drawing-unit coordinate to a millimetre literal.
func num(v float64) string {
	return mm(v * unitScale)
}

// mm formats a millimetre value rounded off at four decimals.
func mm(v float64) string {
	r := math.Round(v*10000) / 10000
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// builder accumulates indented s-expression text.
type builder struct {
	sb    strings.Builder
	depth int
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) indent() {
	for i := 0; i < b.depth; i++ {
		b.sb.WriteString("  ")
	}
}

func (b *builder) open(format string, args ...any) {
	b.indent()
	b.sb.WriteString("(")
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteString("\n")
	b.depth++
}

func (b *builder) closeNode() {
	b.depth--
	b.indent()
	b.sb.WriteString(")\n")
}

func (b *builder) line(format string, args ...any) {
	b.indent()
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteString("\n")
}

func (b *builder) String() string {
	return b.sb.String()
}
