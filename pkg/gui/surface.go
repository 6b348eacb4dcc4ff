package gui

import (
	"github.com/whisperaudio/whispergo/pkg/framework/param"
)

// Surface colors. A dark panel with a lit fill reads well at the small
// sizes hosts give plugin editors.
var (
	colorBackground = Color{R: 24, G: 24, B: 28, A: 255}
	colorTrack      = Color{R: 58, G: 58, B: 66, A: 255}
	colorFill       = Color{R: 96, G: 156, B: 219, A: 255}
	colorKnob       = Color{R: 230, G: 230, B: 235, A: 255}
)

const (
	trackMargin = 40 // px between window edge and slider track
	trackHeight = 8
	knobWidth   = 14
	knobHeight  = 32
)

// Surface is the editor's control model: one horizontal volume slider.
// Pointer input maps to normalized parameter values written straight into
// the shared store's atomic slot, so the audio thread sees each change on
// its next read. The slider position is re-read from the store every frame,
// which also reflects host automation while the editor is open.
type Surface struct {
	volume *param.Parameter

	width, height int32
	dragging      bool

	frame Frame
}

// NewSurface creates the control surface bound to the shared volume
// parameter.
func NewSurface(volume *param.Parameter, width, height int32) *Surface {
	return &Surface{
		volume: volume,
		width:  width,
		height: height,
		frame: Frame{
			Background: colorBackground,
			Rects:      make([]Rect, 0, 3),
		},
	}
}

// Resize recomputes the viewport.
func (s *Surface) Resize(width, height int32) {
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
}

// trackBounds returns the slider track's x origin and width.
func (s *Surface) trackBounds() (x, w int32) {
	w = s.width - 2*trackMargin
	if w < 1 {
		w = 1
	}
	return trackMargin, w
}

// valueAt maps a window x coordinate to a normalized value.
func (s *Surface) valueAt(x int32) float32 {
	tx, tw := s.trackBounds()
	v := float32(x-tx) / float32(tw)
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v
}

// PointerDown starts a drag when the press lands on the slider.
func (s *Surface) PointerDown(x, y int32) {
	cy := s.height / 2
	if y < cy-knobHeight || y > cy+knobHeight {
		return
	}
	s.dragging = true
	s.volume.SetValue(s.valueAt(x))
}

// PointerMove updates the value while a drag is in progress.
func (s *Surface) PointerMove(x, _ int32) {
	if !s.dragging {
		return
	}
	s.volume.SetValue(s.valueAt(x))
}

// PointerUp ends a drag.
func (s *Surface) PointerUp() {
	s.dragging = false
}

// Dragging reports whether a slider drag is in progress.
func (s *Surface) Dragging() bool {
	return s.dragging
}

// Frame builds the display list for the current state. The returned frame
// is reused across calls; no allocation once the rect capacity is reached.
func (s *Surface) Frame() *Frame {
	tx, tw := s.trackBounds()
	cy := s.height / 2
	value := s.volume.GetValue()

	fillW := int32(float32(tw) * value)
	knobX := tx + fillW - knobWidth/2
	if knobX < tx {
		knobX = tx
	}
	if knobX > tx+tw-knobWidth {
		knobX = tx + tw - knobWidth
	}

	s.frame.Rects = s.frame.Rects[:0]
	s.frame.Rects = append(s.frame.Rects,
		Rect{X: tx, Y: cy - trackHeight/2, W: tw, H: trackHeight, Color: colorTrack},
		Rect{X: tx, Y: cy - trackHeight/2, W: fillW, H: trackHeight, Color: colorFill},
		Rect{X: knobX, Y: cy - knobHeight/2, W: knobWidth, H: knobHeight, Color: colorKnob},
	)
	return &s.frame
}
