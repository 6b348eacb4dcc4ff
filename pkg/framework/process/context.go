// Package process provides the per-cycle context handed to a generator's
// audio callback.
package process

import (
	"github.com/whisperaudio/whispergo/pkg/framework/param"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Context carries one processing cycle's output block, the event batch
// delivered for that cycle, and parameter access. The host-facing wrapper
// fills it in before the callback; nothing here allocates per cycle.
type Context struct {
	Output     [][]float32
	SampleRate float64

	events []gomidi.Message

	params *param.Registry
}

// NewContext creates a process context bound to a parameter registry.
func NewContext(params *param.Registry) *Context {
	return &Context{
		params: params,
	}
}

// Param returns the current normalized value of a parameter (0-1).
func (c *Context) Param(id uint32) float32 {
	if p := c.params.Get(id); p != nil {
		return p.GetValue()
	}
	return 0
}

// ParamPlain returns the current plain value of a parameter.
func (c *Context) ParamPlain(id uint32) float32 {
	if p := c.params.Get(id); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// NumSamples returns the number of sample frames in the output block.
func (c *Context) NumSamples() int {
	if len(c.Output) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumOutputChannels returns the number of output channels.
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// Clear zeros the output buffers.
func (c *Context) Clear() {
	for ch := range c.Output {
		for i := range c.Output[ch] {
			c.Output[ch][i] = 0
		}
	}
}

// SetInputEvents installs the cycle's event batch, in arrival order.
func (c *Context) SetInputEvents(events []gomidi.Message) {
	c.events = events
}

// InputEvents returns the cycle's event batch in arrival order.
func (c *Context) InputEvents() []gomidi.Message {
	return c.events
}

// ClearInputEvents drops the processed batch.
func (c *Context) ClearInputEvents() {
	c.events = nil
}
