// Package glfwhost provides a display.Host based on GLFW 3.3 with an
// OpenGL 2.1 context.
package glfwhost

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/QuestScreen/simplegl/display"
)

// Config describes the window to create.
type Config struct {
	Title         string
	Width, Height int
	Fullscreen    bool
	SwapInterval  int
}

// Host owns a GLFW window. GLFW callbacks run inside WaitEvents/PollEvents on
// the calling thread and append to the queue.
type Host struct {
	window *glfw.Window
	queue  []display.Event
}

var controlKeys = map[glfw.Key]byte{
	glfw.KeyEscape:    27,
	glfw.KeyEnter:     13,
	glfw.KeyKPEnter:   13,
	glfw.KeyTab:       9,
	glfw.KeyBackspace: 8,
	glfw.KeyDelete:    127,
}

// New initializes GLFW, creates the window and makes its context current.
func New(cfg Config) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, &display.InitError{Description: "initializing GLFW", Inner: err}
	}
	log.Println("using OpenGL 2.1 profile")
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &display.InitError{Description: "creating window", Inner: err}
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	h := &Host{window: window}
	window.SetCharCallback(h.onChar)
	window.SetKeyCallback(h.onKey)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.push(display.ResizeEvent{Width: int32(width), Height: int32(height)})
	})
	window.SetRefreshCallback(func(*glfw.Window) {
		h.push(display.RedrawEvent{})
	})
	window.SetCloseCallback(func(*glfw.Window) {
		h.push(display.QuitEvent{})
	})
	return h, nil
}

func (h *Host) push(e display.Event) {
	h.queue = append(h.queue, e)
}

func (h *Host) keyEvent(key byte) display.KeyEvent {
	x, y := h.window.GetCursorPos()
	return display.KeyEvent{Key: key, X: int(x), Y: int(y)}
}

func (h *Host) onChar(_ *glfw.Window, char rune) {
	if char < 128 {
		h.push(h.keyEvent(byte(char)))
	}
}

func (h *Host) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action,
	_ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if code, ok := controlKeys[key]; ok {
		h.push(h.keyEvent(code))
	}
}

func (h *Host) pop() display.Event {
	if len(h.queue) == 0 {
		return nil
	}
	e := h.queue[0]
	h.queue = h.queue[1:]
	return e
}

// Size returns the framebuffer size in pixels.
func (h *Host) Size() (int32, int32) {
	w, ht := h.window.GetFramebufferSize()
	return int32(w), int32(ht)
}

// WaitEvent processes GLFW events until at least one is queued.
func (h *Host) WaitEvent() display.Event {
	for len(h.queue) == 0 {
		glfw.WaitEvents()
	}
	return h.pop()
}

// PollEvent returns a queued event, polling GLFW once if the queue is empty.
func (h *Host) PollEvent() display.Event {
	if len(h.queue) == 0 {
		glfw.PollEvents()
	}
	return h.pop()
}

// PostRedisplay queues a redraw request.
func (h *Host) PostRedisplay() {
	h.push(display.RedrawEvent{})
}

// SwapBuffers presents the rendered frame.
func (h *Host) SwapBuffers() {
	h.window.SwapBuffers()
}

// Destroy destroys the window and terminates GLFW.
func (h *Host) Destroy() {
	h.window.Destroy()
	glfw.Terminate()
}
