package param

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Parameter represents a single host-automatable plugin parameter.
//
// The current value is stored as raw float32 bits in a uint32 so that the
// real-time thread and the UI thread can read and write it wait-free. A
// reader always observes a complete write, never a torn value.
type Parameter struct {
	ID           uint32
	Name         string
	Label        string // unit/label text shown next to the control
	Min          float32
	Max          float32
	DefaultValue float32

	// Atomic value for lock-free access in the audio thread
	value uint32 // float32 bits

	formatFunc func(float32) string
}

// GetValue returns the current normalized value (0-1).
func (p *Parameter) GetValue() float32 {
	bits := atomic.LoadUint32(&p.value)
	return float32frombits(bits)
}

// SetValue sets the normalized value (0-1). Out-of-range values are
// clamped, never rejected.
func (p *Parameter) SetValue(value float32) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	atomic.StoreUint32(&p.value, float32bits(value))
}

// GetPlainValue converts the normalized value to the plain range.
func (p *Parameter) GetPlainValue() float32 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue converts a plain value to normalized and stores it.
func (p *Parameter) SetPlainValue(plain float32) {
	p.SetValue(p.Normalize(plain))
}

// FormatValue returns the display text for a normalized value.
func (p *Parameter) FormatValue(normalized float32) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	return fmt.Sprintf("%.3f", plain)
}

// Text returns the display text for the current value.
func (p *Parameter) Text() string {
	return p.FormatValue(p.GetValue())
}

// Normalize converts a plain value to normalized (0-1).
func (p *Parameter) Normalize(plain float32) float32 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts a normalized (0-1) value to the plain range.
func (p *Parameter) Denormalize(normalized float32) float32 {
	return p.Min + normalized*(p.Max-p.Min)
}

// Helper functions for float32 <-> uint32 conversion
func float32bits(f float32) uint32 {
	return *(*uint32)(unsafe.Pointer(&f))
}

func float32frombits(b uint32) float32 {
	return *(*float32)(unsafe.Pointer(&b))
}
