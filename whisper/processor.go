package whisper

import (
	"github.com/whisperaudio/whispergo/pkg/dsp/noise"
	"github.com/whisperaudio/whispergo/pkg/framework/bus"
	"github.com/whisperaudio/whispergo/pkg/framework/debug"
	"github.com/whisperaudio/whispergo/pkg/framework/editor"
	"github.com/whisperaudio/whispergo/pkg/framework/param"
	"github.com/whisperaudio/whispergo/pkg/framework/process"
	"github.com/whisperaudio/whispergo/pkg/framework/voice"
	hostplugin "github.com/whisperaudio/whispergo/pkg/plugin"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Parameter indices.
const (
	ParamVolume uint32 = 0
)

// Processor generates the audio. One instance serves one plugin instance
// for its whole lifetime; the parameter registry it builds is shared by
// reference with the host and the editor session.
type Processor struct {
	params *param.Registry
	store  *param.Store
	buses  *bus.Configuration

	// volume is resolved once so the audio path reads the atomic slot
	// directly, without touching the registry's lookup lock.
	volume *param.Parameter

	gate  voice.Gate
	noise *noise.Generator

	editor *editor.Controller

	sampleRate float64
	active     bool
}

// NewProcessor creates a Whisper processor with its parameter block.
func NewProcessor() *Processor {
	p := &Processor{
		params: param.NewRegistry(),
		buses:  bus.NewGeneratorConfiguration(),
		noise:  noise.NewGenerator(),
	}

	p.volume = param.New(ParamVolume, "volume").
		Label("x").
		Default(1.0).
		Build()
	p.params.Add(p.volume)
	p.store = param.NewStore(p.params)

	return p
}

// Initialize is called once before processing starts.
func (p *Processor) Initialize(sampleRate float64, maxBlockSize int32) error {
	p.sampleRate = sampleRate
	return nil
}

// ProcessEvents consumes the cycle's event batch in arrival order. Only
// channel-0 note-on/note-off move the gate; everything else is ignored.
func (p *Processor) ProcessEvents(events []gomidi.Message) {
	for _, msg := range events {
		p.gate.Apply(msg)
	}
}

// ProcessAudio writes one output block: silence while no note is held,
// otherwise independent uniform noise on every channel scaled by the
// current volume. No allocation, no locks, bounded by frames x channels.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	if !p.gate.Active() {
		ctx.Clear()
		return
	}

	p.noise.Fill(ctx.Output, p.volume.GetValue())
}

// GetParameters returns the shared parameter registry.
func (p *Processor) GetParameters() *param.Registry {
	return p.params
}

// Parameters returns the host's index-based view of the parameter block.
func (p *Processor) Parameters() *param.Store {
	return p.store
}

// GetBuses returns the generator bus layout.
func (p *Processor) GetBuses() *bus.Configuration {
	return p.buses
}

// SetActive is called when processing starts/stops. Deactivation drops any
// held notes so a restart never begins mid-note.
func (p *Processor) SetActive(active bool) error {
	if p.active && !active {
		p.gate.Reset()
	}
	p.active = active
	return nil
}

// CanDo answers the host's capability query. Receiving note events is the
// one capability Whisper depends on; everything else stays at the
// permissive default.
func (p *Processor) CanDo(capability hostplugin.CanDo) hostplugin.Supported {
	switch capability {
	case hostplugin.CanDoReceiveMIDIEvent:
		return hostplugin.SupportedYes
	default:
		return hostplugin.SupportedMaybe
	}
}

// Editor returns the control surface, created on first request. Hosts
// swallow plugin stdio, so the first request also points the default
// logger at a file.
func (p *Processor) Editor() hostplugin.Editor {
	if p.editor == nil {
		if err := debug.LogToFile("whisper.log"); err == nil {
			debug.SetLevel(debug.LogLevelDebug)
		}
		p.editor = editor.NewController(p.volume)
	}
	return p.editor
}
