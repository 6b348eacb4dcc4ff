// Package whisper implements a gated white-noise generator plugin: silent
// until the host delivers a note-on, uniform noise scaled by a single
// host-automatable volume parameter while any note is held.
package whisper

import (
	"github.com/whisperaudio/whispergo/pkg/framework/plugin"
	hostplugin "github.com/whisperaudio/whispergo/pkg/plugin"
)

// Plugin describes Whisper to the host.
type Plugin struct{}

// GetInfo returns the plugin metadata.
func (w *Plugin) GetInfo() plugin.Info {
	return plugin.Info{
		ID:       "com.whisperaudio.whisper",
		UniqueID: 1337,
		Name:     "Whisper",
		Version:  "1.0.0",
		Vendor:   "Whisper Audio",
		Category: plugin.CategoryInstrument,
		Inputs:   0,
		Outputs:  2,
	}
}

// CreateProcessor creates a new processor instance.
func (w *Plugin) CreateProcessor() hostplugin.Processor {
	return NewProcessor()
}
