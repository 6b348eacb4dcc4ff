package param

import (
	"math"
	"sync"
	"testing"
)

func TestParameterSetValueClamps(t *testing.T) {
	p := New(0, "Volume").Build()

	tests := []struct {
		input    float32
		expected float32
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.25, 0.0},
		{1.75, 1.0},
	}

	for _, test := range tests {
		p.SetValue(test.input)
		if got := p.GetValue(); got != test.expected {
			t.Errorf("SetValue(%f): got %f, want %f", test.input, got, test.expected)
		}
	}
}

func TestParameterDefault(t *testing.T) {
	p := New(0, "Volume").Range(0, 1).Default(1.0).Build()

	if got := p.GetValue(); got != 1.0 {
		t.Errorf("Expected default value 1.0, got %f", got)
	}
}

func TestParameterNormalizeDenormalize(t *testing.T) {
	p := New(0, "Freq").Range(20, 20020).Build()

	tests := []struct {
		plain      float32
		normalized float32
	}{
		{20, 0},
		{10020, 0.5},
		{20020, 1},
	}

	for _, test := range tests {
		if got := p.Normalize(test.plain); math.Abs(float64(got-test.normalized)) > 1e-6 {
			t.Errorf("Normalize(%f) = %f, want %f", test.plain, got, test.normalized)
		}
		if got := p.Denormalize(test.normalized); math.Abs(float64(got-test.plain)) > 1e-3 {
			t.Errorf("Denormalize(%f) = %f, want %f", test.normalized, got, test.plain)
		}
	}
}

func TestParameterDegenerateRange(t *testing.T) {
	p := New(0, "Fixed").Range(1, 1).Build()

	if got := p.Normalize(5); got != 0 {
		t.Errorf("Normalize on degenerate range: got %f, want 0", got)
	}
}

func TestParameterFormatValue(t *testing.T) {
	p := New(0, "Volume").Build()
	p.SetValue(0.5)

	if got := p.Text(); got != "0.500" {
		t.Errorf("Text() = %q, want %q", got, "0.500")
	}

	pct := New(1, "Mix").Formatter(PercentFormatter).Build()
	if got := pct.FormatValue(0.25); got != "25%" {
		t.Errorf("FormatValue(0.25) = %q, want %q", got, "25%")
	}
}

// TestParameterConcurrentAccess hammers a parameter from a writer and a
// reader goroutine. Every observed value must be one that some writer
// actually stored; a torn 32-bit read would produce garbage outside the set.
func TestParameterConcurrentAccess(t *testing.T) {
	p := New(0, "Volume").Build()

	written := []float32{0.0, 0.125, 0.25, 0.5, 0.75, 1.0}
	valid := make(map[float32]bool, len(written))
	for _, v := range written {
		valid[v] = true
	}
	p.SetValue(written[0])

	const iterations = 10000
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			p.SetValue(written[i%len(written)])
		}
	}()

	var bad []float32
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			if v := p.GetValue(); !valid[v] {
				bad = append(bad, v)
			}
		}
	}()

	wg.Wait()

	if len(bad) > 0 {
		t.Errorf("Observed %d torn reads, first: %f", len(bad), bad[0])
	}
}
