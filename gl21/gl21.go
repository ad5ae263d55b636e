// Package gl21 implements draw.Backend with the fixed-function pipeline of
// OpenGL 2.1. All calls must happen on the thread holding the GL context.
package gl21

import (
	"image/color"
	"log"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/QuestScreen/simplegl/draw"
)

var primitives = [...]uint32{
	draw.LineLoop:    gl.LINE_LOOP,
	draw.Lines:       gl.LINES,
	draw.Triangles:   gl.TRIANGLES,
	draw.TriangleFan: gl.TRIANGLE_FAN,
	draw.Quads:       gl.QUADS,
}

// Backend forwards draw calls to OpenGL.
type Backend struct{}

// New loads the OpenGL function pointers. A GL context must be current.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to load OpenGL functions")
	}
	log.Printf("Vendor: %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("Renderer: %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("Version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Backend{}, nil
}

// Clear clears the color buffer with bg.
func (*Backend) Clear(bg color.RGBA) {
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255,
		float32(bg.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// LoadIdentity loads the identity into the current matrix.
func (*Backend) LoadIdentity() {
	gl.LoadIdentity()
}

// Emit sends points between glBegin and glEnd.
func (*Backend) Emit(p draw.Primitive, points []mgl32.Vec2) {
	gl.Begin(primitives[p])
	for _, v := range points {
		gl.Vertex2f(v[0], v[1])
	}
	gl.End()
}

// SetColor sets the current vertex color.
func (*Backend) SetColor(r, g, b uint8) {
	gl.Color3ub(r, g, b)
}

// SetLineWidth sets the rasterized line width.
func (*Backend) SetLineWidth(w float32) {
	gl.LineWidth(w)
}

// SetProjection loads the viewport's projection matrix and sets the GL
// viewport. Leaves the model-view matrix selected.
func (*Backend) SetProjection(v draw.Viewport) {
	m := v.Projection()
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
	x0, y0, x1, y1 := v.PixelRect()
	gl.Viewport(x0, y0, x1, y1)
}
