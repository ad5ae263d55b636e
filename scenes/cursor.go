package scenes

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/QuestScreen/simplegl/draw"
)

const (
	step      = 0.1
	radiusMin = 0.05
)

// Cursor draws a filled circle that is moved with w/a/s/d. r and f grow and
// shrink it. The circle stays inside the viewport of the last frame.
type Cursor struct {
	Pos    mgl32.Vec2
	Radius float32
	vp     draw.Viewport
}

// NewCursor creates the scene with the circle in the center.
func NewCursor() *Cursor {
	return &Cursor{Radius: 0.2, vp: draw.ViewportFor(1, 1)}
}

// Paint implements display.Painter.
func (c *Cursor) Paint(cv *draw.Canvas) {
	c.vp = cv.Viewport()
	c.clamp()

	cv.SetColor(190, 190, 190)
	cv.DrawLine(c.Pos[0], c.vp.Bottom, c.Pos[0], c.vp.Top)
	cv.DrawLine(c.vp.Left, c.Pos[1], c.vp.Right, c.Pos[1])

	cv.SetColor(20, 90, 200)
	cv.FillCirc(c.Pos[0], c.Pos[1], c.Radius)
	cv.SetColor(0, 0, 0)
	cv.DrawCirc(c.Pos[0], c.Pos[1], c.Radius)
}

// OnKey implements display.Painter.
func (c *Cursor) OnKey(key byte, x, y int) {
	switch key {
	case 'w':
		c.Pos[1] += step
	case 's':
		c.Pos[1] -= step
	case 'a':
		c.Pos[0] -= step
	case 'd':
		c.Pos[0] += step
	case 'r':
		c.Radius += radiusMin
	case 'f':
		if c.Radius > 1.5*radiusMin {
			c.Radius -= radiusMin
		}
	}
	c.clamp()
}

func within(v, lo, hi float32) float32 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return mgl32.Clamp(v, lo, hi)
}

func (c *Cursor) clamp() {
	c.Pos[0] = within(c.Pos[0], c.vp.Left+c.Radius, c.vp.Right-c.Radius)
	c.Pos[1] = within(c.Pos[1], c.vp.Bottom+c.Radius, c.vp.Top-c.Radius)
}
