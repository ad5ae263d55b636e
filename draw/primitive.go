package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive selects how a sequence of points is assembled into shapes.
type Primitive int

const (
	// LineLoop connects all points and the last point back to the first.
	LineLoop Primitive = iota
	// Lines draws a separate segment for each consecutive pair of points.
	Lines
	// Triangles draws a separate triangle for each three points.
	Triangles
	// TriangleFan draws triangles sharing the first point.
	TriangleFan
	// Quads draws a separate quadrilateral for each four points.
	Quads
)

var primitiveNames = [...]string{"LineLoop", "Lines", "Triangles",
	"TriangleFan", "Quads"}

func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "Primitive(?)"
	}
	return primitiveNames[p]
}

// Backend is the graphics library a Canvas forwards its calls to.
// Every method is called on the thread owning the graphics context.
type Backend interface {
	// Clear fills the frame buffer with the given color.
	Clear(bg color.RGBA)
	// LoadIdentity resets the model-view transformation.
	LoadIdentity()
	// Emit draws the given points assembled as p.
	// The slice must not be retained after Emit returns.
	Emit(p Primitive, points []mgl32.Vec2)
	// SetColor sets the current drawing color.
	SetColor(r, g, b uint8)
	// SetLineWidth sets the width of lines in pixels.
	SetLineWidth(w float32)
	// SetProjection maps the logical coordinate window of v to its pixel area.
	SetProjection(v Viewport)
}
