// Package plugin defines the contract between a host and a generator
// plugin: lifecycle entry points, the capability query, and the editor
// surface. The host integration layer that discovers and loads plugin
// binaries lives outside this module; it drives these interfaces.
package plugin

import (
	"github.com/whisperaudio/whispergo/pkg/framework/bus"
	"github.com/whisperaudio/whispergo/pkg/framework/param"
	"github.com/whisperaudio/whispergo/pkg/framework/plugin"
	"github.com/whisperaudio/whispergo/pkg/framework/process"
	"github.com/whisperaudio/whispergo/pkg/gui"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Plugin is the main interface that plugin authors implement.
type Plugin interface {
	// GetInfo returns plugin metadata.
	GetInfo() plugin.Info

	// CreateProcessor creates a new instance of the audio processor.
	CreateProcessor() Processor
}

// Processor handles event delivery and audio generation. ProcessEvents and
// ProcessAudio are invoked in strict sequence within one cycle on the
// host's real-time thread; neither may allocate, lock, or block.
type Processor interface {
	// Initialize is called once before processing starts.
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessEvents delivers the cycle's event batch in arrival order.
	ProcessEvents(events []gomidi.Message)

	// ProcessAudio generates the cycle's output block.
	ProcessAudio(ctx *process.Context)

	// GetParameters returns the parameter registry shared with the host
	// and the editor.
	GetParameters() *param.Registry

	// GetBuses returns the bus configuration.
	GetBuses() *bus.Configuration

	// SetActive is called when processing starts/stops.
	SetActive(active bool) error

	// CanDo answers the host's capability query.
	CanDo(capability CanDo) Supported
}

// Editor is the optional control surface a processor exposes. All methods
// are invoked from the host's UI thread; Idle must return promptly.
type Editor interface {
	Size() (width, height int32)
	Position() (x, y int32)
	Open(handle gui.Handle) bool
	Close()
	Idle()
	IsOpen() bool
}

// HasEditor is implemented by processors that present a control surface.
type HasEditor interface {
	Editor() Editor
}
