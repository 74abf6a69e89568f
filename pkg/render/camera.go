package render

import (
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/segments"
)

// Camera maps drawing coordinates onto the screen. Drawing space has Y
// increasing upward, screens have Y increasing downward, so the camera
// inverts Y.
type Camera struct {
	// Center position in drawing units.
	CenterX float64
	CenterY float64

	// Zoom level in pixels per drawing unit.
	Zoom float64

	// Screen dimensions in pixels.
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera with a sane default zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         60.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts drawing coordinates to screen pixels.
func (c *Camera) WorldToScreen(p geom.Point) (float64, float64) {
	x := (p.X - c.CenterX) * c.Zoom
	y := (p.Y - c.CenterY) * c.Zoom

	x += float64(c.ScreenWidth) / 2.0
	y = float64(c.ScreenHeight)/2.0 - y
	return x, y
}

// ScreenToWorld converts screen pixels back to drawing coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float64) geom.Point {
	x := screenX - float64(c.ScreenWidth)/2.0
	y := float64(c.ScreenHeight)/2.0 - screenY

	x /= c.Zoom
	y /= c.Zoom
	return geom.Pt(x+c.CenterX, y+c.CenterY)
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY += deltaY / c.Zoom
}

// ZoomAt zooms in or out while keeping the point under the cursor
// stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 1.0 {
		c.Zoom = 1.0
	}
	if c.Zoom > 2000.0 {
		c.Zoom = 2000.0
	}

	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit centers the camera on the bounding box and zooms so it fills 90%
// of the screen.
func (c *Camera) Fit(bb segments.BoundingBox) {
	width := bb.Width()
	height := bb.Height()
	if width <= 0 && height <= 0 {
		return
	}

	center := bb.Center()
	c.CenterX = center.X
	c.CenterY = center.Y

	zoomX := c.Zoom
	zoomY := c.Zoom
	if width > 0 {
		zoomX = float64(c.ScreenWidth) * 0.9 / width
	}
	if height > 0 {
		zoomY = float64(c.ScreenHeight) * 0.9 / height
	}
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
