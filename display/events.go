package display

// Event is an input or window event delivered by a Host.
type Event interface {
	isEvent()
}

// RedrawEvent requests that the frame is drawn again. This is generated when
// the window is shown or damaged and by Host.PostRedisplay.
type RedrawEvent struct{}

// ResizeEvent reports the new size of the drawable area in pixels.
// It is also sent when the window first appears.
type ResizeEvent struct {
	Width, Height int32
}

// KeyEvent reports a pressed key as character code together with the mouse
// position in window pixels.
type KeyEvent struct {
	Key  byte
	X, Y int
}

// QuitEvent reports that the window has been closed.
type QuitEvent struct{}

func (RedrawEvent) isEvent() {}
func (ResizeEvent) isEvent() {}
func (KeyEvent) isEvent()    {}
func (QuitEvent) isEvent()   {}

// Host is a windowing backend owning one window with a current graphics
// context. All methods are called from the thread running the render loop.
type Host interface {
	// Size returns the current size of the drawable area in pixels.
	Size() (width, height int32)
	// WaitEvent blocks until an event is available and returns it.
	// A nil return is treated as a spurious wakeup.
	WaitEvent() Event
	// PollEvent returns the next pending event or nil if there is none.
	PollEvent() Event
	// PostRedisplay queues a RedrawEvent.
	PostRedisplay()
	// SwapBuffers presents the back buffer.
	SwapBuffers()
}
