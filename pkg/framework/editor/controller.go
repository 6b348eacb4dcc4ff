// Package editor manages the lifetime of the plugin's embedded control
// surface on behalf of the host.
package editor

import (
	"github.com/whisperaudio/whispergo/pkg/framework/debug"
	"github.com/whisperaudio/whispergo/pkg/framework/param"
	"github.com/whisperaudio/whispergo/pkg/gui"
)

// Reported editor dimensions. Hosts size the parent window from these
// before calling Open.
const (
	Width  = 600
	Height = 300
)

// BackendFactory builds the windowing backend for a new session. Injected
// so tests can substitute a counting stub for SDL.
type BackendFactory func() gui.Backend

// Controller implements the host's editor contract: declarative size and
// position, open/close, and an idle tick that resumes the session's driver
// exactly once per call.
//
// At most one session is alive at a time, and it is only ever touched from
// the host's UI thread. The session shares the plugin's parameter store by
// reference; it never synchronizes with the real-time thread any other way.
type Controller struct {
	volume     *param.Parameter
	newBackend BackendFactory
	log        *debug.Logger

	session *gui.Driver
}

// NewController creates a controller for the shared volume parameter,
// defaulting to the SDL backend.
func NewController(volume *param.Parameter) *Controller {
	return &Controller{
		volume: volume,
		newBackend: func() gui.Backend {
			return gui.NewSDLBackend("Whisper")
		},
		log: debug.Default(),
	}
}

// SetBackendFactory overrides how session backends are built.
func (c *Controller) SetBackendFactory(factory BackendFactory) {
	c.newBackend = factory
}

// SetLogger overrides the controller's logger.
func (c *Controller) SetLogger(log *debug.Logger) {
	c.log = log
}

// Size returns the fixed editor dimensions.
func (c *Controller) Size() (width, height int32) {
	return Width, Height
}

// Position returns the fixed editor origin.
func (c *Controller) Position() (x, y int32) {
	return 0, 0
}

// Open starts a session embedded in the host-supplied window handle. Any
// prior session is torn down first, so two sessions are never alive at
// once. The driver's setup step runs synchronously here: if native resource
// acquisition fails, no session is installed and Open reports failure.
func (c *Controller) Open(handle gui.Handle) bool {
	c.log.Debug("editor open, handle=%#x", uintptr(handle))

	if c.session != nil {
		c.discard()
	}

	driver := gui.NewDriver(c.newBackend(), handle, c.volume, Width, Height)
	if _, err := driver.Step(); err != nil {
		c.log.Error("editor open failed: %v", err)
		return false
	}

	c.session = driver
	return true
}

// Idle resumes the active session for one step. When the session reports
// completion it is discarded; idle calls without a session are no-ops.
func (c *Controller) Idle() {
	if c.session == nil {
		return
	}

	result, err := c.session.Step()
	if err != nil {
		c.log.Error("editor session failed: %v", err)
	}
	if result == gui.Completed {
		c.log.Debug("editor session completed")
		c.session = nil
	}
}

// Close unconditionally discards the active session, releasing its window
// and rendering resources.
func (c *Controller) Close() {
	c.log.Debug("editor close")
	if c.session != nil {
		c.discard()
	}
}

// IsOpen reports whether a session currently exists. A session that has
// logically completed but has not yet been observed by an Idle call still
// counts as open; the signal is intentionally slightly stale.
func (c *Controller) IsOpen() bool {
	return c.session != nil
}

func (c *Controller) discard() {
	c.session.Release()
	c.session = nil
}
