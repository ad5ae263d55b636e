// Package sdlhost provides a display.Host based on SDL2 with an OpenGL 2.1
// context.
package sdlhost

import (
	"bytes"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/QuestScreen/simplegl/display"
)

// Config describes the window to create.
type Config struct {
	Title         string
	Width, Height int32
	Fullscreen    bool
	// SwapInterval is passed to SDL_GL_SetSwapInterval. -1 requests adaptive
	// vsync.
	SwapInterval int
}

// Host owns the SDL window and its GL context.
// It must be created and used only from the main OS thread.
type Host struct {
	window   *sdl.Window
	context  sdl.GLContext
	redrawID uint32
}

// control keys that do not produce text input.
var controlKeys = map[sdl.Keycode]byte{
	sdl.K_ESCAPE:    27,
	sdl.K_RETURN:    13,
	sdl.K_KP_ENTER:  13,
	sdl.K_TAB:       9,
	sdl.K_BACKSPACE: 8,
	sdl.K_DELETE:    127,
}

func setGLAttributes() {
	log.Println("using OpenGL 2.1 profile")
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
}

// New initializes SDL and creates the window. On error, everything that has
// been initialized is torn down again.
func New(cfg Config) (h *Host, err error) {
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, &display.InitError{Description: "initializing SDL", Inner: err}
	}
	defer func() {
		if err != nil {
			sdl.Quit()
		}
	}()
	setGLAttributes()

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	h = &Host{}
	h.window, err = sdl.CreateWindow(cfg.Title, int32(sdl.WINDOWPOS_UNDEFINED),
		int32(sdl.WINDOWPOS_UNDEFINED), cfg.Width, cfg.Height, flags)
	if err != nil {
		return nil, &display.InitError{Description: "creating window", Inner: err}
	}
	h.context, err = h.window.GLCreateContext()
	if err != nil {
		h.window.Destroy()
		return nil, &display.InitError{Description: "creating GL context", Inner: err}
	}
	if err := sdl.GLSetSwapInterval(cfg.SwapInterval); err != nil {
		log.Printf("Could not set swap interval to %d\n", cfg.SwapInterval)
	}
	h.redrawID = sdl.RegisterEvents(1)
	sdl.StartTextInput()
	return h, nil
}

// Size returns the drawable size of the window in pixels.
func (h *Host) Size() (int32, int32) {
	return h.window.GLGetDrawableSize()
}

// WaitEvent blocks until SDL delivers an event.
func (h *Host) WaitEvent() display.Event {
	return h.translate(sdl.WaitEvent())
}

// PollEvent returns the next pending event, or nil.
func (h *Host) PollEvent() display.Event {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return nil
		}
		if e := h.translate(event); e != nil {
			return e
		}
	}
}

// PostRedisplay pushes a redraw request to SDL's event queue.
func (h *Host) PostRedisplay() {
	sdl.PushEvent(&sdl.UserEvent{Type: h.redrawID})
}

// SwapBuffers presents the rendered frame.
func (h *Host) SwapBuffers() {
	h.window.GLSwap()
}

// Destroy destroys GL context and window, and shuts down SDL.
func (h *Host) Destroy() {
	sdl.GLDeleteContext(h.context)
	h.window.Destroy()
	sdl.Quit()
}

func mousePos() (int, int) {
	x, y, _ := sdl.GetMouseState()
	return int(x), int(y)
}

// translate returns nil for events that have no display counterpart.
func (h *Host) translate(event sdl.Event) display.Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return nil
		}
		if key, ok := controlKeys[e.Keysym.Sym]; ok {
			x, y := mousePos()
			return display.KeyEvent{Key: key, X: x, Y: y}
		}
	case *sdl.TextInputEvent:
		text := e.Text[:]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		// only single ASCII characters map to key codes
		if len(text) == 1 && text[0] < 128 {
			x, y := mousePos()
			return display.KeyEvent{Key: text[0], X: x, Y: y}
		}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			w, ht := h.Size()
			return display.ResizeEvent{Width: w, Height: ht}
		case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_EXPOSED:
			return display.RedrawEvent{}
		}
	case *sdl.UserEvent:
		if e.Type == h.redrawID {
			return display.RedrawEvent{}
		}
	case *sdl.QuitEvent:
		return display.QuitEvent{}
	}
	return nil
}
