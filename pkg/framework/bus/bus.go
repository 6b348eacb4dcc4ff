// Package bus declares a plugin's audio and event bus layout.
package bus

// MediaType represents the type of bus
type MediaType int32

const (
	// MediaTypeAudio represents audio bus type
	MediaTypeAudio MediaType = 0
	// MediaTypeEvent represents event/MIDI bus type
	MediaTypeEvent MediaType = 1
)

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// Info contains bus configuration
type Info struct {
	MediaType    MediaType
	Direction    Direction
	ChannelCount int32
	Name         string
	IsActive     bool
}

// Configuration manages audio and event buses
type Configuration struct {
	audioBuses []Info
	eventBuses []Info
}

// NewGeneratorConfiguration creates the layout of a pure generator: a
// stereo main output, an event input, and no audio input.
func NewGeneratorConfiguration() *Configuration {
	return &Configuration{
		audioBuses: []Info{
			{
				MediaType:    MediaTypeAudio,
				Direction:    DirectionOutput,
				ChannelCount: 2,
				Name:         "Stereo Out",
				IsActive:     true,
			},
		},
		eventBuses: []Info{
			{
				MediaType:    MediaTypeEvent,
				Direction:    DirectionInput,
				ChannelCount: 1,
				Name:         "Event In",
				IsActive:     true,
			},
		},
	}
}

// AudioBuses returns the audio buses.
func (c *Configuration) AudioBuses() []Info {
	return c.audioBuses
}

// EventBuses returns the event buses.
func (c *Configuration) EventBuses() []Info {
	return c.eventBuses
}

// NumInputChannels returns the main audio input channel count.
func (c *Configuration) NumInputChannels() int32 {
	return c.countChannels(MediaTypeAudio, DirectionInput)
}

// NumOutputChannels returns the main audio output channel count.
func (c *Configuration) NumOutputChannels() int32 {
	return c.countChannels(MediaTypeAudio, DirectionOutput)
}

func (c *Configuration) countChannels(media MediaType, dir Direction) int32 {
	var count int32
	for _, b := range c.audioBuses {
		if b.MediaType == media && b.Direction == dir {
			count += b.ChannelCount
		}
	}
	return count
}
