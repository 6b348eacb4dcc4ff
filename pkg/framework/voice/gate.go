// Package voice tracks which notes a host currently holds down.
package voice

import (
	"github.com/whisperaudio/whispergo/pkg/midi"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Gate counts currently-held notes. It is mutated only by the event-delivery
// path and read only by the audio-generation path, both on the real-time
// thread, so it needs no synchronization of its own.
//
// A note-off without a matching note-on indicates a lost or mismatched
// event from the host; the counter saturates at zero instead of wrapping.
type Gate struct {
	held uint32
}

// NoteOn records a newly held note.
func (g *Gate) NoteOn() {
	g.held++
}

// NoteOff records a released note, saturating at zero.
func (g *Gate) NoteOff() {
	if g.held > 0 {
		g.held--
	}
}

// Apply consumes one raw event. Only channel-0 note messages change the
// counter; everything else is ignored, not an error.
func (g *Gate) Apply(msg gomidi.Message) {
	switch midi.Classify(msg) {
	case midi.EventTypeNoteOn:
		g.NoteOn()
	case midi.EventTypeNoteOff:
		g.NoteOff()
	}
}

// Held returns the number of currently-held notes.
func (g *Gate) Held() uint32 {
	return g.held
}

// Active reports whether any note is held.
func (g *Gate) Active() bool {
	return g.held > 0
}

// Reset drops all held notes.
func (g *Gate) Reset() {
	g.held = 0
}
