package display

import (
	"image/color"

	"github.com/QuestScreen/simplegl/draw"
)

// this struct contains the frame-level drawing state of a Display.
type renderer struct {
	canvas    *draw.Canvas
	bg        color.RGBA
	lineWidth float32
}

func (r *renderer) init(b draw.Backend, bg color.RGBA, lineWidth float32) {
	r.canvas = draw.NewCanvas(b)
	r.bg = bg
	r.lineWidth = lineWidth
}

func (r *renderer) resize(width, height int32) {
	r.canvas.SetViewport(draw.ViewportFor(width, height))
}

// clear starts a new frame. The line width is reset so that a painter
// changing it does not leak its setting into the next frame.
func (r *renderer) clear() {
	r.canvas.Clear(r.bg)
	if r.lineWidth > 0 {
		r.canvas.SetLineWidth(r.lineWidth)
	}
}
