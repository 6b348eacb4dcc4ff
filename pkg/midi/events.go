// Package midi handles the raw event stream a host delivers once per
// processing cycle. Messages stay in gomidi's wire representation; only the
// status byte is inspected.
package midi

import (
	"gitlab.com/gomidi/midi/v2"
)

type EventType uint8

const (
	EventTypeUnknown EventType = iota
	EventTypeNoteOn
	EventTypeNoteOff
)

// Status bytes recognized on the event path. Only channel 0 note messages
// gate the generator; everything else passes through Classify as unknown.
const (
	StatusNoteOn  byte = 144 // 0x90, note on, channel 0
	StatusNoteOff byte = 128 // 0x80, note off, channel 0
)

// Classify inspects the status byte of a raw message. The match is exact:
// note messages on other channels are deliberately not recognized.
func Classify(msg midi.Message) EventType {
	if len(msg) == 0 {
		return EventTypeUnknown
	}
	switch msg[0] {
	case StatusNoteOn:
		return EventTypeNoteOn
	case StatusNoteOff:
		return EventTypeNoteOff
	default:
		return EventTypeUnknown
	}
}

// Note returns the note number of a recognized note message, 0 otherwise.
// The generator ignores pitch; this exists for logging and hosts.
func Note(msg midi.Message) uint8 {
	if len(msg) < 2 {
		return 0
	}
	switch Classify(msg) {
	case EventTypeNoteOn, EventTypeNoteOff:
		return msg[1]
	default:
		return 0
	}
}
