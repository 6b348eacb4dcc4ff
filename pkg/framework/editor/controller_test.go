package editor

import (
	"errors"
	"testing"

	"github.com/whisperaudio/whispergo/pkg/framework/param"
	"github.com/whisperaudio/whispergo/pkg/gui"
)

// countingBackend tracks acquisition/release pairing across sessions.
type countingBackend struct {
	opens    *int
	closes   *int
	failOpen bool
	queue    []gui.Event
}

func (b *countingBackend) Open(handle gui.Handle, width, height int32) error {
	if b.failOpen {
		return errors.New("window creation failed")
	}
	*b.opens++
	return nil
}

func (b *countingBackend) Poll() (gui.Event, bool) {
	if len(b.queue) == 0 {
		return nil, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

func (b *countingBackend) Render(frame *gui.Frame) error { return nil }

func (b *countingBackend) Close() {
	*b.closes++
}

type harness struct {
	controller *Controller
	volume     *param.Parameter
	opens      int
	closes     int
	last       *countingBackend
	failOpen   bool
}

func newHarness() *harness {
	h := &harness{
		volume: param.New(0, "volume").Default(1.0).Build(),
	}
	h.controller = NewController(h.volume)
	h.controller.SetBackendFactory(func() gui.Backend {
		h.last = &countingBackend{opens: &h.opens, closes: &h.closes, failOpen: h.failOpen}
		return h.last
	})
	return h
}

func TestControllerReportsFixedGeometry(t *testing.T) {
	h := newHarness()

	if w, ht := h.controller.Size(); w != 600 || ht != 300 {
		t.Errorf("Size() = (%d, %d), want (600, 300)", w, ht)
	}
	if x, y := h.controller.Position(); x != 0 || y != 0 {
		t.Errorf("Position() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestControllerOpenIdleClose(t *testing.T) {
	h := newHarness()

	if h.controller.IsOpen() {
		t.Error("IsOpen() before Open, want false")
	}

	if !h.controller.Open(0) {
		t.Fatal("Open() failed")
	}
	if !h.controller.IsOpen() {
		t.Error("IsOpen() after Open, want true")
	}
	if h.opens != 1 {
		t.Errorf("opens = %d, want 1 (setup runs inside Open)", h.opens)
	}

	h.controller.Idle()
	h.controller.Idle()
	if !h.controller.IsOpen() {
		t.Error("IsOpen() after idle ticks, want true")
	}

	h.controller.Close()
	if h.controller.IsOpen() {
		t.Error("IsOpen() after Close, want false")
	}
	if h.closes != 1 {
		t.Errorf("closes = %d, want 1", h.closes)
	}

	// Close without a session is a no-op.
	h.controller.Close()
	if h.closes != 1 {
		t.Errorf("closes after second Close = %d, want 1", h.closes)
	}
}

func TestControllerIdleDiscardsCompletedSession(t *testing.T) {
	h := newHarness()

	if !h.controller.Open(0) {
		t.Fatal("Open() failed")
	}

	h.last.queue = append(h.last.queue, gui.CloseRequest{})

	// The session has not yet been resumed past the close request, so it
	// still counts as open.
	if !h.controller.IsOpen() {
		t.Error("IsOpen() before the observing idle, want true")
	}

	h.controller.Idle()
	if h.controller.IsOpen() {
		t.Error("IsOpen() after completion was observed, want false")
	}
	if h.closes != 1 {
		t.Errorf("closes = %d, want 1", h.closes)
	}

	// Idle without a session is a no-op.
	h.controller.Idle()
	if h.closes != 1 {
		t.Errorf("closes after idle no-op = %d, want 1", h.closes)
	}
}

// Open while a session is active must tear down the prior session; resource
// acquisitions and releases pair 1:1 with only the new session left alive.
func TestControllerReopenDoesNotLeak(t *testing.T) {
	h := newHarness()

	if !h.controller.Open(0) {
		t.Fatal("first Open() failed")
	}
	if !h.controller.Open(0) {
		t.Fatal("second Open() failed")
	}

	if h.opens != 2 {
		t.Errorf("opens = %d, want 2", h.opens)
	}
	if h.closes != 1 {
		t.Errorf("closes = %d, want 1 (first session released)", h.closes)
	}
	if !h.controller.IsOpen() {
		t.Error("IsOpen() after reopen, want true")
	}

	h.controller.Close()
	if h.opens != h.closes {
		t.Errorf("opens=%d closes=%d, want matched 1:1", h.opens, h.closes)
	}
}

func TestControllerOpenFailureInstallsNoSession(t *testing.T) {
	h := newHarness()
	h.failOpen = true

	if h.controller.Open(0) {
		t.Fatal("Open() succeeded, want failure")
	}
	if h.controller.IsOpen() {
		t.Error("IsOpen() after failed Open, want false")
	}
	if h.closes != 0 {
		t.Errorf("closes = %d, want 0 (nothing acquired)", h.closes)
	}

	// The controller stays usable: a later Open may succeed.
	h.failOpen = false
	if !h.controller.Open(0) {
		t.Error("Open() after earlier failure should succeed")
	}
}

func TestControllerSessionWritesSharedParameter(t *testing.T) {
	h := newHarness()

	if !h.controller.Open(0) {
		t.Fatal("Open() failed")
	}

	// Click the middle of the slider track through the session backend.
	h.last.queue = append(h.last.queue,
		gui.PointerDown{X: 300, Y: 150},
		gui.PointerUp{},
	)
	h.controller.Idle()

	got := h.volume.GetValue()
	if diff := got - 0.5; diff < -0.001 || diff > 0.001 {
		t.Errorf("shared volume after click = %f, want 0.5", got)
	}
}
