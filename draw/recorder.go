package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies the Backend method a Command was recorded from.
type Op uint8

const (
	OpClear Op = iota
	OpLoadIdentity
	OpEmit
	OpSetColor
	OpSetLineWidth
	OpSetProjection
)

var opNames = [...]string{
	OpClear:         "Clear",
	OpLoadIdentity:  "LoadIdentity",
	OpEmit:          "Emit",
	OpSetColor:      "SetColor",
	OpSetLineWidth:  "SetLineWidth",
	OpSetProjection: "SetProjection",
}

func (o Op) String() string {
	if int(o) >= len(opNames) {
		return "Op(?)"
	}
	return opNames[o]
}

// Command is a single recorded Backend call. Only the fields relevant to Op
// are set.
type Command struct {
	Op        Op
	Primitive Primitive
	Points    []mgl32.Vec2
	Color     color.RGBA
	Width     float32
	Viewport  Viewport
}

// Recorder is a Backend that stores every call instead of drawing it.
type Recorder struct {
	Commands []Command
}

// Clear records a Clear call.
func (r *Recorder) Clear(bg color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: bg})
}

// LoadIdentity records a LoadIdentity call.
func (r *Recorder) LoadIdentity() {
	r.Commands = append(r.Commands, Command{Op: OpLoadIdentity})
}

// Emit records the primitive together with a copy of points.
func (r *Recorder) Emit(p Primitive, points []mgl32.Vec2) {
	pts := make([]mgl32.Vec2, len(points))
	copy(pts, points)
	r.Commands = append(r.Commands, Command{Op: OpEmit, Primitive: p, Points: pts})
}

// SetColor records a SetColor call. The recorded color is opaque.
func (r *Recorder) SetColor(red, green, blue uint8) {
	r.Commands = append(r.Commands, Command{Op: OpSetColor,
		Color: color.RGBA{R: red, G: green, B: blue, A: 255}})
}

// SetLineWidth records a SetLineWidth call.
func (r *Recorder) SetLineWidth(w float32) {
	r.Commands = append(r.Commands, Command{Op: OpSetLineWidth, Width: w})
}

// SetProjection records a SetProjection call.
func (r *Recorder) SetProjection(v Viewport) {
	r.Commands = append(r.Commands, Command{Op: OpSetProjection, Viewport: v})
}

// Count returns how many commands with the given Op have been recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Op == op {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
