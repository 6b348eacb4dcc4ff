package gui

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLBackend implements Backend on go-sdl2. With a non-zero handle the
// window is attached to the host's native window via CreateWindowFrom and
// stays borrowed: teardown destroys the SDL wrapper, never the host window.
//
// SDL's event queue and rendering must stay on the thread that drives the
// backend, which is exactly the contract of the idle-driven step loop.
type SDLBackend struct {
	title string

	window   *sdl.Window
	renderer *sdl.Renderer
	windowID uint32
	ownsInit bool
}

// NewSDLBackend creates an SDL backend. The title is only visible for
// standalone (unparented) windows.
func NewSDLBackend(title string) *SDLBackend {
	return &SDLBackend{title: title}
}

// Open attaches to the host window (or creates a top-level one when handle
// is zero) and sets up a renderer. On error nothing stays acquired.
func (b *SDLBackend) Open(handle Handle, width, height int32) error {
	if sdl.WasInit(sdl.INIT_VIDEO) == 0 {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return fmt.Errorf("init sdl video: %w", err)
		}
		b.ownsInit = true
	}

	var (
		window *sdl.Window
		err    error
	)
	if handle != 0 {
		window, err = sdl.CreateWindowFrom(unsafe.Pointer(uintptr(handle)))
	} else {
		window, err = sdl.CreateWindow(b.title,
			sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			width, height, sdl.WINDOW_SHOWN)
	}
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// Software rendering: present returns immediately, keeping each step
	// bounded. Accelerated contexts may sync to vblank.
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("create renderer: %w", err)
	}

	id, err := window.GetID()
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return fmt.Errorf("window id: %w", err)
	}

	b.window = window
	b.renderer = renderer
	b.windowID = id
	return nil
}

// Poll translates the next pending SDL event for this window. Events for
// other windows are skipped; ok=false once the queue is empty.
func (b *SDLBackend) Poll() (Event, bool) {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil, false
		}

		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return CloseRequest{}, true
		case *sdl.WindowEvent:
			if e.WindowID != b.windowID {
				continue
			}
			switch e.Event {
			case sdl.WINDOWEVENT_CLOSE:
				return CloseRequest{}, true
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				return Resize{W: e.Data1, H: e.Data2}, true
			}
		case *sdl.MouseButtonEvent:
			if e.WindowID != b.windowID || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				return PointerDown{X: e.X, Y: e.Y}, true
			}
			return PointerUp{}, true
		case *sdl.MouseMotionEvent:
			if e.WindowID != b.windowID {
				continue
			}
			return PointerMove{X: e.X, Y: e.Y}, true
		}
	}
}

// Render draws the frame's display list and presents it.
func (b *SDLBackend) Render(frame *Frame) error {
	bg := frame.Background
	if err := b.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return fmt.Errorf("set clear color: %w", err)
	}
	if err := b.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	for _, r := range frame.Rects {
		if err := b.renderer.SetDrawColor(r.Color.R, r.Color.G, r.Color.B, r.Color.A); err != nil {
			return fmt.Errorf("set draw color: %w", err)
		}
		rect := sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
		if err := b.renderer.FillRect(&rect); err != nil {
			return fmt.Errorf("fill rect: %w", err)
		}
	}

	b.renderer.Present()
	return nil
}

// Close releases the renderer and the SDL window wrapper. The borrowed
// native handle itself stays alive; it belongs to the host.
func (b *SDLBackend) Close() {
	if b.renderer != nil {
		b.renderer.Destroy()
		b.renderer = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
}
