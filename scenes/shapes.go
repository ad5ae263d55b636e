package scenes

import "github.com/QuestScreen/simplegl/draw"

type rgb struct{ r, g, b uint8 }

var palettes = [][3]rgb{
	{{200, 30, 30}, {30, 160, 30}, {30, 30, 200}},
	{{240, 140, 0}, {120, 0, 160}, {0, 150, 150}},
	{{40, 40, 40}, {110, 110, 110}, {180, 180, 180}},
}

const maxLineWidth = 10

// Shapes draws one of every primitive. '+' and '-' change the line width,
// 'c' cycles through the color palettes.
type Shapes struct {
	LineWidth float32
	Palette   int
}

// NewShapes creates the scene with one-pixel lines.
func NewShapes() *Shapes {
	return &Shapes{LineWidth: 1}
}

func (s *Shapes) color(c *draw.Canvas, i int) {
	col := palettes[s.Palette][i]
	c.SetColor(col.r, col.g, col.b)
}

// Paint implements display.Painter.
func (s *Shapes) Paint(c *draw.Canvas) {
	c.SetLineWidth(s.LineWidth)

	s.color(c, 0)
	c.DrawRect(-0.9, 0.2, -0.3, 0.8)
	c.FillRect(-0.9, -0.8, -0.3, -0.2)

	s.color(c, 1)
	c.DrawTri(-0.2, 0.2, 0.2, 0.2, 0, 0.8)
	c.FillTri(-0.2, -0.8, 0.2, -0.8, 0, -0.2)

	s.color(c, 2)
	c.DrawCirc(0.6, 0.5, 0.3)
	c.FillCirc(0.6, -0.5, 0.3)

	c.SetColor(0, 0, 0)
	v := c.Viewport()
	c.DrawLine(v.Left, 0, v.Right, 0)
}

// OnKey implements display.Painter.
func (s *Shapes) OnKey(key byte, x, y int) {
	switch key {
	case '+':
		if s.LineWidth < maxLineWidth {
			s.LineWidth++
		}
	case '-':
		if s.LineWidth > 1 {
			s.LineWidth--
		}
	case 'c':
		s.Palette = (s.Palette + 1) % len(palettes)
	}
}
