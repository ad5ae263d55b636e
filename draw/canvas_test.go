package draw

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasShapes(t *testing.T) {
	var rec Recorder
	c := NewCanvas(&rec)

	c.DrawRect(0, 0, 1, 2)
	c.FillRect(-1, -1, 0, 0)
	c.DrawTri(0, 0, 1, 0, 0, 1)
	c.FillTri(0, 0, -1, 0, 0, -1)
	c.DrawLine(0.5, 0.5, -0.5, -0.5)
	c.DrawCirc(0, 0, 0.5)
	c.FillCirc(1, 1, 0.25)

	require.Len(t, rec.Commands, 7)
	expected := []struct {
		p   Primitive
		pts int
	}{
		{LineLoop, 4}, {Quads, 4}, {LineLoop, 3}, {Triangles, 3},
		{Lines, 2}, {LineLoop, 41}, {TriangleFan, 42},
	}
	for i, e := range expected {
		cmd := rec.Commands[i]
		assert.Equal(t, OpEmit, cmd.Op)
		assert.Equal(t, e.p, cmd.Primitive, "command %d", i)
		assert.Len(t, cmd.Points, e.pts, "command %d", i)
	}

	assert.Equal(t, []mgl32.Vec2{{0, 0}, {1, 0}, {1, 2}, {0, 2}},
		rec.Commands[0].Points)
	assert.Equal(t, []mgl32.Vec2{{0.5, 0.5}, {-0.5, -0.5}},
		rec.Commands[4].Points)
}

func TestCanvasRecordedPointsAreCopied(t *testing.T) {
	var rec Recorder
	c := NewCanvas(&rec)
	c.DrawRect(0, 0, 1, 1)
	c.DrawRect(5, 5, 6, 6)
	assert.Equal(t, mgl32.Vec2{0, 0}, rec.Commands[0].Points[0])
	assert.Equal(t, mgl32.Vec2{5, 5}, rec.Commands[1].Points[0])
}

func TestCanvasState(t *testing.T) {
	var rec Recorder
	c := NewCanvas(&rec)
	c.SetColor(10, 20, 30)
	c.SetLineWidth(2.5)
	c.Clear(White)
	v := ViewportFor(200, 400)
	c.SetViewport(v)

	assert.Equal(t, []Command{
		{Op: OpSetColor, Color: color.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{Op: OpSetLineWidth, Width: 2.5},
		{Op: OpClear, Color: White},
		{Op: OpLoadIdentity},
		{Op: OpSetProjection, Viewport: v},
	}, rec.Commands)
	assert.Equal(t, v, c.Viewport())
	assert.Equal(t, 1, rec.Count(OpClear))

	rec.Reset()
	assert.Empty(t, rec.Commands)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "TriangleFan", TriangleFan.String())
	assert.Equal(t, "Primitive(?)", Primitive(42).String())
	assert.Equal(t, "SetProjection", OpSetProjection.String())
}
