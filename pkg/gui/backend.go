// Package gui runs the editor's embedded control surface as a resumable
// state machine driven one step at a time from the host's idle callback.
package gui

// Handle is a borrowed native window handle supplied by the host at open
// time. It is valid only for the lifetime of the session it was passed to;
// the host must close the editor before invalidating it. A zero handle
// means "no parent": the backend opens its own top-level window, which is
// what the standalone host uses.
type Handle uintptr

// Backend owns the native windowing resources behind a session: the window
// attached to the borrowed handle, the rendering surface, and the event
// queue. Poll must return immediately when no event is pending; the driver
// relies on that to bound the cost of one step.
type Backend interface {
	// Open acquires the window and rendering surface. On error nothing
	// is considered acquired.
	Open(handle Handle, width, height int32) error

	// Poll returns the next pending window event, or ok=false when the
	// queue is empty. It never blocks.
	Poll() (Event, bool)

	// Render draws one frame and presents it.
	Render(frame *Frame) error

	// Close releases everything acquired by Open.
	Close()
}

// Event is a window event translated for the control surface.
type Event interface {
	isEvent()
}

// CloseRequest reports that the user or host asked the window to close.
type CloseRequest struct{}

// Resize reports a new window size in pixels.
type Resize struct {
	W, H int32
}

// PointerDown reports a primary-button press at window coordinates.
type PointerDown struct {
	X, Y int32
}

// PointerMove reports pointer motion at window coordinates.
type PointerMove struct {
	X, Y int32
}

// PointerUp reports a primary-button release.
type PointerUp struct{}

func (CloseRequest) isEvent() {}
func (Resize) isEvent()       {}
func (PointerDown) isEvent()  {}
func (PointerMove) isEvent()  {}
func (PointerUp) isEvent()    {}

// Color is an RGBA display color.
type Color struct {
	R, G, B, A uint8
}

// Rect is one filled rectangle of a frame's display list.
type Rect struct {
	X, Y, W, H int32
	Color      Color
}

// Frame is the display list for one rendered frame. Keeping rendering as
// plain data lets tests drive the driver without a windowing system.
type Frame struct {
	Background Color
	Rects      []Rect
}
