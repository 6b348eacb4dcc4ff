package plugin

import (
	"testing"
)

func TestIsGenerator(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected bool
	}{
		{"pure generator", Info{Inputs: 0, Outputs: 2}, true},
		{"effect", Info{Inputs: 2, Outputs: 2}, false},
		{"sink", Info{Inputs: 2, Outputs: 0}, false},
		{"empty", Info{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.info.IsGenerator(); got != test.expected {
				t.Errorf("IsGenerator() = %v, want %v", got, test.expected)
			}
		})
	}
}
