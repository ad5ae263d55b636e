package display

import (
	"image/color"
	"log"
	"time"

	"github.com/QuestScreen/simplegl/draw"
)

// EscapeKey is the character code that always ends the render loop.
const EscapeKey byte = 27

// Painter produces the content of the window.
type Painter interface {
	// Paint draws one frame to c. The frame has already been cleared.
	Paint(c *draw.Canvas)
	// OnKey handles a key press at the given window pixel position.
	// The display is redrawn afterwards.
	OnKey(key byte, x, y int)
}

// Options configures a Display. The zero value clears to white and leaves
// the line width to the painter.
type Options struct {
	Background color.RGBA
	LineWidth  float32
	// LogFPS enables logging the frame rate once per second while frames are
	// being rendered.
	LogFPS bool
}

// Display connects a Host, a drawing backend and a Painter.
type Display struct {
	host    Host
	painter Painter
	r       renderer
	drawing bool
	pending bool
	logFPS  bool
	frames  uint64
}

// New creates a display. host, backend and painter are mandatory.
func New(host Host, backend draw.Backend, painter Painter, opts Options) (*Display, error) {
	switch {
	case host == nil:
		return nil, ErrNoHost
	case backend == nil:
		return nil, ErrNoBackend
	case painter == nil:
		return nil, ErrNoPainter
	}
	bg := opts.Background
	if bg == (color.RGBA{}) {
		bg = draw.White
	}
	d := &Display{host: host, painter: painter, logFPS: opts.LogFPS}
	d.r.init(backend, bg, opts.LineWidth)
	return d, nil
}

// Resize recalculates the logical coordinate window for the given pixel size.
func (d *Display) Resize(width, height int32) {
	d.r.resize(width, height)
}

// Viewport returns the current logical coordinate window.
func (d *Display) Viewport() draw.Viewport {
	return d.r.canvas.Viewport()
}

// Frames returns the number of frames drawn so far.
func (d *Display) Frames() uint64 {
	return d.frames
}

// Redraw draws one frame: clear, Painter.Paint, swap.
// A Redraw issued while a frame is being drawn is not executed immediately;
// it is turned into a single redraw request once the current frame is done.
func (d *Display) Redraw() {
	if d.drawing {
		d.pending = true
		return
	}
	d.frame()
	if d.pending {
		d.pending = false
		d.host.PostRedisplay()
	}
}

func (d *Display) frame() {
	d.drawing = true
	defer func() { d.drawing = false }()
	d.r.clear()
	d.painter.Paint(d.r.canvas)
	d.host.SwapBuffers()
	d.frames++
}

// RequestRedraw asks the host to schedule a redraw.
func (d *Display) RequestRedraw() {
	d.host.PostRedisplay()
}

// Key handles a key press. It returns true if the render loop must end,
// which is the case exactly for EscapeKey. Any other key is forwarded to the
// painter and followed by one redraw request.
func (d *Display) Key(key byte, x, y int) (quit bool) {
	if key == EscapeKey {
		return true
	}
	d.painter.OnKey(key, x, y)
	d.RequestRedraw()
	return false
}

// RenderLoop implements the rendering loop for the display. It sets up the
// viewport, draws the initial frame and then processes events until the
// escape key is pressed or the window is closed. All redraw requests arriving
// in one batch of events result in a single frame.
// This function MUST be called in the thread owning the graphics context.
func (d *Display) RenderLoop() {
	d.Resize(d.host.Size())
	render := true

	var fps fpsCounter
	fps.reset(time.Now())

	for {
		if render {
			d.Redraw()
			render = false
			if n, ok := fps.frame(time.Now()); ok && d.logFPS {
				log.Printf("FPS: %d\n", n)
			}
		}
		waitStart := time.Now()
		for event := d.host.WaitEvent(); event != nil; event = d.host.PollEvent() {
			switch e := event.(type) {
			case RedrawEvent:
				render = true
			case ResizeEvent:
				d.Resize(e.Width, e.Height)
				render = true
			case KeyEvent:
				if d.Key(e.Key, e.X, e.Y) {
					return
				}
			case QuitEvent:
				return
			}
		}
		if curTime := time.Now(); render && curTime.Sub(waitStart) >= time.Second {
			// rendering resumes after being idle
			fps.reset(curTime)
		}
	}
}

// fpsCounter counts frames per second of continuous rendering.
type fpsCounter struct {
	start  time.Time
	frames int64
}

func (f *fpsCounter) reset(now time.Time) {
	f.start = now
	f.frames = 0
}

// frame counts a frame drawn at now. Once a second has passed since the last
// reset, it returns the number of frames drawn in that time and resets.
func (f *fpsCounter) frame(now time.Time) (int64, bool) {
	f.frames++
	if now.Sub(f.start) < time.Second {
		return 0, false
	}
	n := f.frames
	f.reset(now)
	return n, true
}
