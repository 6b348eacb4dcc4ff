package voice

import (
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestGateCountsHeldNotes(t *testing.T) {
	var g Gate

	if g.Active() {
		t.Error("new gate should be inactive")
	}

	g.NoteOn()
	g.NoteOn()
	if got := g.Held(); got != 2 {
		t.Errorf("Held() = %d, want 2", got)
	}

	g.NoteOff()
	if got := g.Held(); got != 1 {
		t.Errorf("Held() = %d, want 1", got)
	}
	if !g.Active() {
		t.Error("gate with one held note should be active")
	}

	g.NoteOff()
	if g.Active() {
		t.Error("gate should be inactive after all notes released")
	}
}

func TestGateSaturatesAtZero(t *testing.T) {
	var g Gate

	g.NoteOff()
	g.NoteOff()
	if got := g.Held(); got != 0 {
		t.Errorf("Held() after unmatched note-offs = %d, want 0", got)
	}

	g.NoteOn()
	if got := g.Held(); got != 1 {
		t.Errorf("Held() = %d, want 1", got)
	}
}

// The counter after any event sequence equals max(0, #on - #off) evaluated
// prefix by prefix; an early overshoot of note-offs must not eat later
// note-ons.
func TestGateApplySequences(t *testing.T) {
	on := gomidi.NoteOn(0, 60, 100)
	off := gomidi.NoteOff(0, 60)
	cc := gomidi.ControlChange(0, 7, 64)
	otherChannel := gomidi.NoteOn(3, 60, 100)

	tests := []struct {
		name     string
		events   []gomidi.Message
		expected uint32
	}{
		{"balanced", []gomidi.Message{on, on, off, off}, 0},
		{"held", []gomidi.Message{on, on, off}, 1},
		{"off first then on", []gomidi.Message{off, on}, 1},
		{"off overshoot mid-sequence", []gomidi.Message{on, off, off, on, on}, 2},
		{"unrecognized ignored", []gomidi.Message{on, cc, otherChannel, off}, 0},
		{"empty", nil, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var g Gate
			for _, msg := range test.events {
				g.Apply(msg)
			}
			if got := g.Held(); got != test.expected {
				t.Errorf("Held() = %d, want %d", got, test.expected)
			}
		})
	}
}

func TestGateReset(t *testing.T) {
	var g Gate
	g.NoteOn()
	g.NoteOn()
	g.Reset()

	if g.Active() {
		t.Error("gate should be inactive after Reset")
	}
}
