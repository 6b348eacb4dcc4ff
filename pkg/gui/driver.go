package gui

import (
	"fmt"

	"github.com/whisperaudio/whispergo/pkg/framework/param"
)

// Result is what one Step of the driver reports back to its caller.
type Result int

const (
	// Suspended means the driver did one unit of work and yielded.
	Suspended Result = iota
	// Completed means the session is over and its resources are released.
	Completed
)

type driverState int

const (
	stateUninitialized driverState = iota
	stateRunning
	stateCompleted
)

// Driver runs a windowed event loop as an explicit state machine with one
// suspension point per unit of work. The host's idle callback resumes it by
// calling Step; no call ever blocks waiting for a window event, and the
// driver never owns a thread.
//
// Lifecycle: the first Step acquires all native resources through the
// backend, renders the first frame, and suspends. Every later Step drains
// pending window events, applies them to the control surface, and either
// renders one frame and suspends, or releases everything and completes once
// a close was requested. Step after completion is a no-op.
type Driver struct {
	backend Backend
	handle  Handle
	volume  *param.Parameter

	width, height int32

	state   driverState
	closing bool
	surface *Surface
}

// NewDriver creates a driver bound to a borrowed window handle and the
// shared volume parameter. Nothing is acquired until the first Step.
func NewDriver(backend Backend, handle Handle, volume *param.Parameter, width, height int32) *Driver {
	return &Driver{
		backend: backend,
		handle:  handle,
		volume:  volume,
		width:   width,
		height:  height,
	}
}

// Step resumes the driver for exactly one unit of work and returns whether
// it suspended again or completed. An error is only returned together with
// Completed; by then all acquired resources have been released.
func (d *Driver) Step() (Result, error) {
	switch d.state {
	case stateCompleted:
		return Completed, nil
	case stateUninitialized:
		return d.initialize()
	default:
		return d.run()
	}
}

// initialize performs the entire one-time setup synchronously: window,
// rendering surface, control-surface model, first frame.
func (d *Driver) initialize() (Result, error) {
	if err := d.backend.Open(d.handle, d.width, d.height); err != nil {
		d.state = stateCompleted
		return Completed, fmt.Errorf("open editor window: %w", err)
	}

	d.surface = NewSurface(d.volume, d.width, d.height)

	if err := d.backend.Render(d.surface.Frame()); err != nil {
		d.release()
		return Completed, fmt.Errorf("render first frame: %w", err)
	}

	d.state = stateRunning
	return Suspended, nil
}

// run performs one iteration of the event loop: drain, apply, redraw.
func (d *Driver) run() (Result, error) {
	for {
		ev, ok := d.backend.Poll()
		if !ok {
			break
		}
		switch e := ev.(type) {
		case CloseRequest:
			d.closing = true
		case Resize:
			d.surface.Resize(e.W, e.H)
		case PointerDown:
			d.surface.PointerDown(e.X, e.Y)
		case PointerMove:
			d.surface.PointerMove(e.X, e.Y)
		case PointerUp:
			d.surface.PointerUp()
		}
	}

	if d.closing {
		d.release()
		return Completed, nil
	}

	if err := d.backend.Render(d.surface.Frame()); err != nil {
		d.release()
		return Completed, fmt.Errorf("render frame: %w", err)
	}

	return Suspended, nil
}

// Release tears the session down from outside the step cycle, for when the
// owning controller discards it before a close request was observed. Safe
// to call at any point and idempotent; a released driver reports Completed
// from then on.
func (d *Driver) Release() {
	if d.state == stateUninitialized {
		// Nothing acquired yet; just forbid a later first step.
		d.state = stateCompleted
		return
	}
	d.release()
}

func (d *Driver) release() {
	if d.state == stateCompleted {
		return
	}
	d.backend.Close()
	d.state = stateCompleted
}

// Running reports whether the driver is between its first step and
// completion.
func (d *Driver) Running() bool {
	return d.state == stateRunning
}
