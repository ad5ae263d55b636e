package display

// ScriptHost is a Host without a window. It plays back a fixed list of
// events; a nil entry ends the current batch (PollEvent returns nil once).
// When the script is exhausted, WaitEvent returns QuitEvent.
type ScriptHost struct {
	Width, Height int32
	events        []Event
	// Swaps counts SwapBuffers calls.
	Swaps int
	// Posted counts PostRedisplay calls.
	Posted int
}

// NewScriptHost creates a host of the given size playing back events.
func NewScriptHost(width, height int32, events ...Event) *ScriptHost {
	return &ScriptHost{Width: width, Height: height,
		events: append([]Event(nil), events...)}
}

// Frames builds a script requesting n redraws, each in its own batch.
// A negative n yields an empty script.
func Frames(n int) []Event {
	if n < 0 {
		n = 0
	}
	ret := make([]Event, 0, 2*n)
	for i := 0; i < n; i++ {
		ret = append(ret, RedrawEvent{}, nil)
	}
	return ret
}

// Size returns the configured size.
func (h *ScriptHost) Size() (int32, int32) {
	return h.Width, h.Height
}

// WaitEvent returns the next event, skipping batch separators.
func (h *ScriptHost) WaitEvent() Event {
	for len(h.events) > 0 {
		e := h.events[0]
		h.events = h.events[1:]
		if e != nil {
			return e
		}
	}
	return QuitEvent{}
}

// PollEvent returns the next event of the current batch.
func (h *ScriptHost) PollEvent() Event {
	if len(h.events) == 0 {
		return nil
	}
	e := h.events[0]
	h.events = h.events[1:]
	return e
}

// PostRedisplay adds a RedrawEvent to the end of the current batch.
func (h *ScriptHost) PostRedisplay() {
	h.Posted++
	for i, e := range h.events {
		if e == nil {
			h.events = append(h.events[:i+1], h.events[i:]...)
			h.events[i] = RedrawEvent{}
			return
		}
	}
	h.events = append(h.events, RedrawEvent{})
}

// SwapBuffers counts the call.
func (h *ScriptHost) SwapBuffers() {
	h.Swaps++
}

// Pending returns the number of events not yet delivered.
func (h *ScriptHost) Pending() int {
	return len(h.events)
}
