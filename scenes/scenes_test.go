package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuestScreen/simplegl/display"
	"github.com/QuestScreen/simplegl/draw"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "shapes", normalize("Shapes"))
	assert.Equal(t, "cursor", normalize(" Cürsor!"))
	assert.Equal(t, "a-b_c", normalize("a-b_c"))
}

func TestLookup(t *testing.T) {
	p, err := Lookup("SHAPES")
	require.NoError(t, err)
	assert.IsType(t, &Shapes{}, p)

	p, err = Lookup("cursor")
	require.NoError(t, err)
	assert.IsType(t, &Cursor{}, p)

	_, err = Lookup("teapot")
	assert.Error(t, err)
	assert.Equal(t, []string{"cursor", "shapes"}, Names())
}

func TestShapesPaint(t *testing.T) {
	var rec draw.Recorder
	c := draw.NewCanvas(&rec)
	c.SetViewport(draw.ViewportFor(400, 200))
	rec.Reset()

	s := NewShapes()
	s.Paint(c)

	prims := []draw.Primitive{}
	for _, cmd := range rec.Commands {
		if cmd.Op == draw.OpEmit {
			prims = append(prims, cmd.Primitive)
		}
	}
	assert.Equal(t, []draw.Primitive{draw.LineLoop, draw.Quads, draw.LineLoop,
		draw.Triangles, draw.LineLoop, draw.TriangleFan, draw.Lines}, prims)
	last := rec.Commands[len(rec.Commands)-1]
	assert.Equal(t, float32(-2), last.Points[0][0], "horizon spans the viewport")
	assert.Equal(t, float32(2), last.Points[1][0])
}

func TestShapesKeys(t *testing.T) {
	s := NewShapes()
	s.OnKey('-', 0, 0)
	assert.Equal(t, float32(1), s.LineWidth)
	for i := 0; i < 20; i++ {
		s.OnKey('+', 0, 0)
	}
	assert.Equal(t, float32(maxLineWidth), s.LineWidth)

	for i := 0; i < len(palettes); i++ {
		s.OnKey('c', 0, 0)
	}
	assert.Equal(t, 0, s.Palette)
	s.OnKey('c', 0, 0)
	assert.Equal(t, 1, s.Palette)
}

func TestCursorMoves(t *testing.T) {
	var rec draw.Recorder
	cv := draw.NewCanvas(&rec)
	cv.SetViewport(draw.ViewportFor(400, 400))

	c := NewCursor()
	c.Paint(cv)
	c.OnKey('d', 0, 0)
	c.OnKey('w', 0, 0)
	assert.InDelta(t, 0.1, c.Pos[0], 1e-6)
	assert.InDelta(t, 0.1, c.Pos[1], 1e-6)

	for i := 0; i < 50; i++ {
		c.OnKey('a', 0, 0)
	}
	assert.InDelta(t, -1+c.Radius, c.Pos[0], 1e-6, "stays inside the viewport")

	c.OnKey('r', 0, 0)
	assert.InDelta(t, 0.25, c.Radius, 1e-6)
	for i := 0; i < 10; i++ {
		c.OnKey('f', 0, 0)
	}
	assert.InDelta(t, radiusMin, c.Radius, 1e-5)
}

func TestScenesInDisplay(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)
		var rec draw.Recorder
		host := display.NewScriptHost(300, 200,
			display.KeyEvent{Key: 'd'}, display.KeyEvent{Key: '+'}, nil)
		d, err := display.New(host, &rec, p, display.Options{LineWidth: 1})
		require.NoError(t, err)
		d.RenderLoop()
		assert.Equal(t, uint64(2), d.Frames(), name)
		assert.NotZero(t, rec.Count(draw.OpEmit), name)
	}
}
