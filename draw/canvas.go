package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// White is the background the display clears to unless configured otherwise.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Canvas emits 2D shapes to a Backend. Coordinates are logical coordinates
// as defined by the current Viewport.
type Canvas struct {
	b   Backend
	vp  Viewport
	buf [4]mgl32.Vec2
}

// NewCanvas creates a canvas drawing to b.
func NewCanvas(b Backend) *Canvas {
	return &Canvas{b: b}
}

func (c *Canvas) rect(p Primitive, x1, y1, x2, y2 float32) {
	c.buf[0] = mgl32.Vec2{x1, y1}
	c.buf[1] = mgl32.Vec2{x2, y1}
	c.buf[2] = mgl32.Vec2{x2, y2}
	c.buf[3] = mgl32.Vec2{x1, y2}
	c.b.Emit(p, c.buf[:4])
}

func (c *Canvas) tri(p Primitive, x1, y1, x2, y2, x3, y3 float32) {
	c.buf[0] = mgl32.Vec2{x1, y1}
	c.buf[1] = mgl32.Vec2{x2, y2}
	c.buf[2] = mgl32.Vec2{x3, y3}
	c.b.Emit(p, c.buf[:3])
}

// DrawRect draws the outline of the axis-aligned rectangle with the corners
// (x1, y1) and (x2, y2).
func (c *Canvas) DrawRect(x1, y1, x2, y2 float32) {
	c.rect(LineLoop, x1, y1, x2, y2)
}

// FillRect fills the axis-aligned rectangle with the corners (x1, y1) and
// (x2, y2).
func (c *Canvas) FillRect(x1, y1, x2, y2 float32) {
	c.rect(Quads, x1, y1, x2, y2)
}

// DrawTri draws the outline of a triangle.
func (c *Canvas) DrawTri(x1, y1, x2, y2, x3, y3 float32) {
	c.tri(LineLoop, x1, y1, x2, y2, x3, y3)
}

// FillTri fills a triangle.
func (c *Canvas) FillTri(x1, y1, x2, y2, x3, y3 float32) {
	c.tri(Triangles, x1, y1, x2, y2, x3, y3)
}

// DrawCirc draws the outline of the circle around (x, y) with radius r.
func (c *Canvas) DrawCirc(x, y, r float32) {
	c.b.Emit(LineLoop, OutlineCircle(mgl32.Vec2{x, y}, r))
}

// FillCirc fills the circle around (x, y) with radius r.
func (c *Canvas) FillCirc(x, y, r float32) {
	c.b.Emit(TriangleFan, FilledCircle(mgl32.Vec2{x, y}, r))
}

// DrawLine draws a line from (x1, y1) to (x2, y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2 float32) {
	c.buf[0] = mgl32.Vec2{x1, y1}
	c.buf[1] = mgl32.Vec2{x2, y2}
	c.b.Emit(Lines, c.buf[:2])
}

// SetColor changes the current drawing color.
func (c *Canvas) SetColor(r, g, b uint8) {
	c.b.SetColor(r, g, b)
}

// SetLineWidth changes the line width; 1.0 is one pixel.
func (c *Canvas) SetLineWidth(w float32) {
	c.b.SetLineWidth(w)
}

// Clear fills the frame with bg and resets the model-view transformation.
func (c *Canvas) Clear(bg color.RGBA) {
	c.b.Clear(bg)
	c.b.LoadIdentity()
}

// SetViewport sets the logical coordinate window.
func (c *Canvas) SetViewport(v Viewport) {
	c.vp = v
	c.b.SetProjection(v)
}

// Viewport returns the viewport last set via SetViewport.
func (c *Canvas) Viewport() Viewport {
	return c.vp
}
