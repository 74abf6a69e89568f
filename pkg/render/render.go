// Package render draws generated symbols with gio. It is the shared
// rasterizer of the viewer command: polylines with dash patterns and
// gap breaks, arcs, circles, filled polygons, and text labels.
package render

import (
	"math"
	"sort"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/schemalab/symkit/pkg/drawing"
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
	"github.com/schemalab/symkit/pkg/symbols"
)

// Global theme for text rendering.
var defaultTheme = material.NewTheme()

func init() {
	defaultTheme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
}

// Arc and circle flattening resolution.
const arcSteps = 32

// Dash pattern in drawing units.
const (
	dashOn  = 0.12
	dashOff = 0.07
	dotOn   = 0.02
	dotOff  = 0.08
)

// RenderDrawing renders the flattened segments of a drawing.
func RenderDrawing(gtx layout.Context, camera *Camera, d *drawing.Drawing, colors *Colors) {
	if d == nil {
		return
	}
	RenderSegments(gtx, camera, d.Segments(), colors)
}

// RenderSymbol renders a single symbol at its local coordinates.
func RenderSymbol(gtx layout.Context, camera *Camera, sym symbols.Symbol, colors *Colors) {
	if sym == nil {
		return
	}
	RenderSegments(gtx, camera, sym.Segments(), colors)
}

// RenderSegments renders segments back to front by z-order.
func RenderSegments(gtx layout.Context, camera *Camera, segs []segments.Segment, colors *Colors) {
	ordered := make([]segments.Segment, len(segs))
	copy(ordered, segs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return zOrder(ordered[i]) < zOrder(ordered[j])
	})

	for _, seg := range ordered {
		switch s := seg.(type) {
		case segments.Line:
			renderLine(gtx, camera, s, colors)
		case segments.Arc:
			renderArc(gtx, camera, s, colors)
		case segments.Circle:
			renderCircle(gtx, camera, s, colors)
		case segments.Poly:
			renderPoly(gtx, camera, s, colors)
		case segments.Text:
			renderText(gtx, camera, s, colors)
		}
	}
}

// RenderAnchors overlays anchor markers with their names.
func RenderAnchors(gtx layout.Context, camera *Camera, anchors map[string]geom.Point, colors *Colors) {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)

	const markerRadius = 3.0
	for _, name := range names {
		x, y := camera.WorldToScreen(anchors[name])

		var path clip.Path
		path.Begin(gtx.Ops)
		addCircle(&path, float32(x), float32(y), markerRadius)
		paint.FillShape(gtx.Ops, colors.Anchor, clip.Outline{
			Path: path.End(),
		}.Op())

		stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x)+4, float32(y)+2))).Push(gtx.Ops)
		lbl := material.Label(defaultTheme, unit.Sp(11), name)
		lbl.Color = colors.AnchorText
		lbl.Alignment = text.Start
		lbl.Layout(gtx)
		stack.Pop()
	}
}

// FillBackground clears the frame to the theme background.
func FillBackground(gtx layout.Context, colors *Colors) {
	paint.Fill(gtx.Ops, colors.Background)
}

// RenderGrid draws unit grid lines across the visible area.
func RenderGrid(gtx layout.Context, camera *Camera, colors *Colors) {
	if camera.Zoom < 8 {
		return
	}
	topLeft := camera.ScreenToWorld(0, 0)
	bottomRight := camera.ScreenToWorld(float64(camera.ScreenWidth), float64(camera.ScreenHeight))

	var path clip.Path
	path.Begin(gtx.Ops)
	for gx := math.Floor(topLeft.X); gx <= bottomRight.X; gx++ {
		x, _ := camera.WorldToScreen(geom.Pt(gx, 0))
		path.MoveTo(f32.Pt(float32(x), 0))
		path.LineTo(f32.Pt(float32(x), float32(camera.ScreenHeight)))
	}
	for gy := math.Floor(bottomRight.Y); gy <= topLeft.Y; gy++ {
		_, y := camera.WorldToScreen(geom.Pt(0, gy))
		path.MoveTo(f32.Pt(0, float32(y)))
		path.LineTo(f32.Pt(float32(camera.ScreenWidth), float32(y)))
	}
	paint.FillShape(gtx.Ops, colors.Grid, clip.Stroke{
		Path:  path.End(),
		Width: 1.0,
	}.Op())
}

func zOrder(seg segments.Segment) int {
	switch s := seg.(type) {
	case segments.Line:
		return s.ZOrder
	case segments.Arc:
		return s.ZOrder
	case segments.Circle:
		return s.ZOrder
	case segments.Poly:
		return s.ZOrder
	case segments.Text:
		return s.ZOrder
	}
	return 0
}

// strokeWidth scales the body line width with zoom, with a visibility
// floor.
func strokeWidth(camera *Camera) float32 {
	w := 0.025 * camera.Zoom
	if w < 1.5 {
		w = 1.5
	}
	return float32(w)
}

func renderLine(gtx layout.Context, camera *Camera, line segments.Line, colors *Colors) {
	for _, run := range line.Runs() {
		if len(run) < 2 {
			continue
		}
		pts := toScreen(camera, run)
		strokeRun(gtx, camera, pts, line.Style, colors)
		renderArrowheads(gtx, camera, pts, line.Arrow, colors)
	}
}

func renderPoly(gtx layout.Context, camera *Camera, poly segments.Poly, colors *Colors) {
	if len(poly.Points) < 2 {
		return
	}
	pts := toScreen(camera, poly.Points)

	if poly.Fill != segments.FillNone {
		fillColor := colors.Body
		if poly.Fill == segments.FillBackground {
			fillColor = colors.Background
		}
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(pts[0])
		for _, p := range pts[1:] {
			path.LineTo(p)
		}
		path.Close()
		paint.FillShape(gtx.Ops, fillColor, clip.Outline{
			Path: path.End(),
		}.Op())
	}

	outline := pts
	if !poly.Open {
		outline = append(append([]f32.Point{}, pts...), pts[0])
	}
	strokeRun(gtx, camera, outline, poly.Style, colors)
}

func renderCircle(gtx layout.Context, camera *Camera, circle segments.Circle, colors *Colors) {
	x, y := camera.WorldToScreen(circle.Center)
	radius := float32(circle.Radius * camera.Zoom)

	if circle.Fill != segments.FillNone {
		fillColor := colors.Body
		if circle.Fill == segments.FillBackground {
			fillColor = colors.Background
		}
		var path clip.Path
		path.Begin(gtx.Ops)
		addCircle(&path, float32(x), float32(y), radius)
		paint.FillShape(gtx.Ops, fillColor, clip.Outline{
			Path: path.End(),
		}.Op())
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	addCircle(&path, float32(x), float32(y), radius)
	paint.FillShape(gtx.Ops, colors.Body, clip.Stroke{
		Path:  path.End(),
		Width: strokeWidth(camera),
	}.Op())
}

func renderArc(gtx layout.Context, camera *Camera, arc segments.Arc, colors *Colors) {
	t2 := arc.Theta2
	for t2 <= arc.Theta1 {
		t2 += 360
	}

	pts := make([]f32.Point, 0, arcSteps+1)
	for i := 0; i <= arcSteps; i++ {
		theta := arc.Theta1 + (t2-arc.Theta1)*float64(i)/arcSteps
		x, y := camera.WorldToScreen(arcPoint(arc, theta))
		pts = append(pts, f32.Pt(float32(x), float32(y)))
	}
	strokeRun(gtx, camera, pts, arc.Style, colors)
	renderArrowheads(gtx, camera, pts, arc.Arrow, colors)
}

// arcPoint evaluates the arc's ellipse at parameter angle theta in
// degrees, honoring the arc's own rotation.
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

func renderText(gtx layout.Context, camera *Camera, txt segments.Text, colors *Colors) {
	if txt.Label == "" {
		return
	}
	x, y := camera.WorldToScreen(txt.Position)

	size := 0.22 * camera.Zoom
	if size < 9 {
		size = 9
	}
	// Offset roughly centers the glyphs on the position.
	dx := -float32(size) * 0.3 * float32(len(txt.Label))
	dy := -float32(size) * 0.65

	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x)+dx, float32(y)+dy))).Push(gtx.Ops)
	defer stack.Pop()

	lbl := material.Label(defaultTheme, unit.Sp(float32(size)), txt.Label)
	lbl.Color = colors.Text
	lbl.Alignment = text.Start
	lbl.Layout(gtx)
}

func toScreen(camera *Camera, pts []geom.Point) []f32.Point {
	out := make([]f32.Point, len(pts))
	for i, p := range pts {
		x, y := camera.WorldToScreen(p)
		out[i] = f32.Pt(float32(x), float32(y))
	}
	return out
}

// strokeRun strokes a screen-space polyline, expanding dash and dot
// patterns into sub-segments.
func strokeRun(gtx layout.Context, camera *Camera, pts []f32.Point, style segments.LineStyle, colors *Colors) {
	if len(pts) < 2 {
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	switch style {
	case segments.Dashed:
		addDashed(&path, pts, dashOn*camera.Zoom, dashOff*camera.Zoom)
	case segments.Dotted:
		addDashed(&path, pts, dotOn*camera.Zoom, dotOff*camera.Zoom)
	default:
		path.MoveTo(pts[0])
		for _, p := range pts[1:] {
			path.LineTo(p)
		}
	}
	paint.FillShape(gtx.Ops, colors.Body, clip.Stroke{
		Path:  path.End(),
		Width: strokeWidth(camera),
	}.Op())
}

// addDashed walks the polyline emitting alternating on/off spans of the
// given screen-space lengths.
func addDashed(path *clip.Path, pts []f32.Point, on, off float64) {
	if on <= 0 {
		on = 1
	}
	if off <= 0 {
		off = 1
	}

	drawing := true
	remain := on
	cur := pts[0]
	path.MoveTo(cur)

	for i := 1; i < len(pts); i++ {
		target := pts[i]
		for {
			dx := float64(target.X - cur.X)
			dy := float64(target.Y - cur.Y)
			dist := math.Hypot(dx, dy)
			if dist <= remain {
				remain -= dist
				if drawing {
					path.LineTo(target)
				} else {
					path.MoveTo(target)
				}
				cur = target
				break
			}
			t := remain / dist
			next := f32.Pt(cur.X+float32(t*dx), cur.Y+float32(t*dy))
			if drawing {
				path.LineTo(next)
				remain = off
			} else {
				path.MoveTo(next)
				remain = on
			}
			drawing = !drawing
			cur = next
		}
	}
}

func addCircle(path *clip.Path, cx, cy, radius float32) {
	for i := 0; i <= arcSteps; i++ {
		angle := float64(i) * 2.0 * math.Pi / arcSteps
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(f32.Pt(x, y))
		} else {
			path.LineTo(f32.Pt(x, y))
		}
	}
	path.Close()
}

// renderArrowheads draws filled arrowheads at the polyline ends.
func renderArrowheads(gtx layout.Context, camera *Camera, pts []f32.Point, arrow segments.Arrow, colors *Colors) {
	if arrow == segments.ArrowNone || len(pts) < 2 {
		return
	}
	size := float32(0.15 * camera.Zoom)
	if size < 5 {
		size = 5
	}

	if arrow == segments.ArrowForward || arrow == segments.ArrowBoth {
		drawArrowhead(gtx, pts[len(pts)-2], pts[len(pts)-1], size, colors)
	}
	if arrow == segments.ArrowReverse || arrow == segments.ArrowBoth {
		drawArrowhead(gtx, pts[1], pts[0], size, colors)
	}
}

func drawArrowhead(gtx layout.Context, from, tip f32.Point, size float32, colors *Colors) {
	dx := float64(tip.X - from.X)
	dy := float64(tip.Y - from.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ux := float32(dx / dist)
	uy := float32(dy / dist)

	base := f32.Pt(tip.X-ux*size, tip.Y-uy*size)
	half := size * 0.4
	left := f32.Pt(base.X-uy*half, base.Y+ux*half)
	right := f32.Pt(base.X+uy*half, base.Y-ux*half)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(tip)
	path.LineTo(left)
	path.LineTo(right)
	path.Close()
	paint.FillShape(gtx.Ops, colors.Body, clip.Outline{
		Path: path.End(),
	}.Op())
}
