// Package viewer is the interactive gio viewer for generated symbols.
// Without a script it shows a gallery of the whole catalog; given a
// layout script it shows the scripted drawing.
package viewer

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"

	"github.com/schemalab/symkit/pkg/catalog"
	"github.com/schemalab/symkit/pkg/drawing"
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/render"
	"github.com/schemalab/symkit/pkg/script"
)

// App launches the viewer window. ScriptPath may be empty for the
// catalog gallery.
type App struct {
	scriptPath string
}

// New creates a viewer for the given script, or the gallery when the
// path is empty.
func New(scriptPath string) *App {
	return &App{scriptPath: scriptPath}
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (a *App) Run() error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Symbol Viewer"))
		w.Option(app.Size(unit.Dp(1200), unit.Dp(800)))

		if err := run(w, a.scriptPath); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

type viewerApp struct {
	window   *app.Window
	theme    *material.Theme
	explorer *explorer.Explorer

	drawing    *drawing.Drawing
	title      string
	camera     *render.Camera
	colorTheme render.Theme
	colors     *render.Colors

	showAnchors bool
	showGrid    bool

	// UI widgets
	openFileBtn widget.Clickable
	themeBtn    widget.Clickable
	fitBtn      widget.Clickable
	anchorsBtn  widget.Clickable

	// Mouse interaction
	lastPointerPos f32.Point
	isDragging     bool
}

func run(w *app.Window, scriptPath string) error {
	viewer := &viewerApp{
		window:     w,
		theme:      material.NewTheme(),
		explorer:   explorer.NewExplorer(w),
		camera:     render.NewCamera(1200, 800),
		colorTheme: render.ThemeLight,
		showGrid:   true,
	}
	viewer.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	viewer.colors = render.GetColors(viewer.colorTheme)

	if scriptPath != "" {
		viewer.loadScript(scriptPath)
	} else {
		viewer.loadGallery()
	}

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			viewer.camera.UpdateScreenSize(e.Size.X, e.Size.Y)
			viewer.handleInput(gtx)
			viewer.layout(gtx)
			e.Frame(&ops)
		}
	}
}

func (v *viewerApp) handleInput(gtx layout.Context) {
	if v.openFileBtn.Clicked(gtx) {
		v.openFilePicker()
	}
	if v.themeBtn.Clicked(gtx) {
		v.toggleTheme()
	}
	if v.fitBtn.Clicked(gtx) {
		v.fitToView()
	}
	if v.anchorsBtn.Clicked(gtx) {
		v.toggleAnchors()
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "O", Required: key.ModShortcut})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.openFilePicker()
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "T", Required: key.ModShortcut})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.toggleTheme()
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "F"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.fitToView()
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "A"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.toggleAnchors()
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "G"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.showGrid = !v.showGrid
			v.window.Invalidate()
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "Q"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			os.Exit(0)
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			os.Exit(0)
		}
	}

	for {
		ev, ok := gtx.Event(
			pointer.Filter{
				Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			},
		)
		if !ok {
			break
		}

		if pe, ok := ev.(pointer.Event); ok {
			switch pe.Kind {
			case pointer.Press:
				if pe.Buttons == pointer.ButtonPrimary {
					v.isDragging = true
					v.lastPointerPos = pe.Position
				}

			case pointer.Drag:
				if v.isDragging && pe.Buttons == pointer.ButtonPrimary {
					deltaX := float64(pe.Position.X - v.lastPointerPos.X)
					deltaY := float64(pe.Position.Y - v.lastPointerPos.Y)
					v.camera.Pan(deltaX, deltaY)
					v.lastPointerPos = pe.Position
					v.window.Invalidate()
				}

			case pointer.Release:
				v.isDragging = false

			case pointer.Scroll:
				zoomFactor := 1.0 - float64(pe.Scroll.Y)*0.1
				v.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
				v.window.Invalidate()
			}
		}
	}
}

func (v *viewerApp) openFilePicker() {
	go func() {
		file, err := v.explorer.ChooseFile("")
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Printf("File picker error: %v", err)
			}
			return
		}
		defer file.Close()

		if f, ok := file.(*os.File); ok {
			v.loadScript(f.Name())
			v.window.Invalidate()
		}
	}()
}

func (v *viewerApp) loadScript(filepath string) {
	d, err := script.LoadFile(filepath)
	if err != nil {
		log.Printf("Error loading script: %v", err)
		return
	}

	v.drawing = d
	v.title = filepath
	v.window.Option(app.Title("Symbol Viewer - " + filepath))
	v.fitToView()

	log.Printf("Loaded script: %s (%d elements)", filepath, len(d.Placed()))
}

// loadGallery lays the whole catalog out in a grid.
func (v *viewerApp) loadGallery() {
	d := drawing.New()
	const columns = 4
	for i, name := range catalog.Names() {
		sym, err := catalog.Build(name, nil)
		if err != nil {
			log.Printf("Skipping %s: %v", name, err)
			continue
		}
		col := i % columns
		row := i / columns
		at := geom.Pt(float64(col)*5, float64(row)*-4.5)
		if err := d.Add(name, sym, drawing.At(at)); err != nil {
			log.Printf("Skipping %s: %v", name, err)
		}
	}

	v.drawing = d
	v.title = "catalog gallery"
	v.fitToView()
}

func (v *viewerApp) toggleTheme() {
	if v.colorTheme == render.ThemeLight {
		v.colorTheme = render.ThemeDark
	} else {
		v.colorTheme = render.ThemeLight
	}
	v.colors = render.GetColors(v.colorTheme)
	v.window.Invalidate()
}

func (v *viewerApp) toggleAnchors() {
	v.showAnchors = !v.showAnchors
	v.window.Invalidate()
}

func (v *viewerApp) fitToView() {
	if v.drawing == nil {
		return
	}
	bb := v.drawing.Bounds()
	if bb.IsEmpty() {
		return
	}
	v.camera.Fit(bb)
	v.window.Invalidate()
}

func (v *viewerApp) layout(gtx layout.Context) layout.Dimensions {
	render.FillBackground(gtx, v.colors)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.layoutToolbar(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return v.layoutCanvas(gtx)
		}),
	)
}

func (v *viewerApp) layoutToolbar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Top: 8, Bottom: 8, Left: 8, Right: 8}

	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(v.theme, &v.openFileBtn, "Open (Ctrl+O)")
						return btn.Layout(gtx)
					}),

					layout.Rigid(layout.Spacer{Width: 8}.Layout),

					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(v.theme, &v.themeBtn, "Theme: "+v.colorTheme.String()+" (Ctrl+T)")
						return btn.Layout(gtx)
					}),

					layout.Rigid(layout.Spacer{Width: 8}.Layout),

					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(v.theme, &v.fitBtn, "Fit (F)")
						return btn.Layout(gtx)
					}),

					layout.Rigid(layout.Spacer{Width: 8}.Layout),

					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						label := "Anchors: off (A)"
						if v.showAnchors {
							label = "Anchors: on (A)"
						}
						btn := material.Button(v.theme, &v.anchorsBtn, label)
						return btn.Layout(gtx)
					}),
				)
			}),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if v.drawing == nil {
					label := material.Body1(v.theme, "Nothing loaded")
					return label.Layout(gtx)
				}
				info := fmt.Sprintf("%s | Elements: %d | Zoom: %.0f",
					v.title, len(v.drawing.Placed()), v.camera.Zoom)
				label := material.Body1(v.theme, info)
				return label.Layout(gtx)
			}),
		)
	})
}

func (v *viewerApp) layoutCanvas(gtx layout.Context) layout.Dimensions {
	if v.drawing == nil {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					title := material.H4(v.theme, "Symbol Viewer")
					return title.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: 16}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					msg := material.Body1(v.theme, "Click 'Open' or press Ctrl+O to select a layout script")
					return msg.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: 8}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					msg := material.Body2(v.theme, "Controls: Left-drag to pan | Scroll to zoom | F fit | A anchors | G grid | Ctrl+T theme | Q quit")
					return msg.Layout(gtx)
				}),
			)
		})
	}

	if v.showGrid {
		render.RenderGrid(gtx, v.camera, v.colors)
	}
	render.RenderDrawing(gtx, v.camera, v.drawing, v.colors)
	if v.showAnchors {
		render.RenderAnchors(gtx, v.camera, v.placedAnchors(), v.colors)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// placedAnchors collects globally transformed anchors keyed by
// instance.anchor.
func (v *viewerApp) placedAnchors() map[string]geom.Point {
	out := map[string]geom.Point{}
	for _, pl := range v.drawing.Placed() {
		for name, p := range pl.Symbol.Anchors() {
			out[pl.Name+"."+name] = pl.Transform.Apply(p)
		}
	}
	return out
}
