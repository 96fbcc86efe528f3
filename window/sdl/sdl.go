//go:build !nosdl

// Package sdl provides a window.System backed by SDL2.
//
// SDL must be driven from the thread that initialized it. Callers running
// the engine loop should lock their main goroutine with runtime.LockOSThread.
package sdl

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/window"
)

// Name is the identifier of the SDL window system.
const Name = "sdl"

// System creates SDL2 windows.
type System struct {
	mu      sync.Mutex
	windows map[uint32]*Window
	quit    bool
	closed  bool
}

// New initializes the SDL video subsystem.
func New() (*System, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: init video: %w", err)
	}
	return &System{windows: make(map[uint32]*Window)}, nil
}

var _ window.System = (*System)(nil)

// Name returns "sdl".
func (s *System) Name() string { return Name }

// windowFlags maps window.Flags to SDL window flags.
func windowFlags(f window.Flags) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if f.Has(window.Resizable) {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if f.Has(window.HighDPI) {
		flags |= uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	}
	if f.Has(window.OpenGL) {
		flags |= uint32(sdl.WINDOW_OPENGL)
	}
	if f.Has(window.Vulkan) {
		flags |= uint32(sdl.WINDOW_VULKAN)
	}
	if f.Has(window.Metal) {
		flags |= uint32(sdl.WINDOW_METAL)
	}
	return flags
}

func position(p int) int32 {
	if p == window.Centered {
		return int32(sdl.WINDOWPOS_CENTERED)
	}
	return int32(p)
}

// Create opens an SDL window.
func (s *System) Create(desc window.Descriptor) (window.Window, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, window.ErrSystemClosed
	}

	title := window.NormalizeTitle(desc.Title)
	sw, err := sdl.CreateWindow(title, position(desc.X), position(desc.Y),
		int32(desc.Width), int32(desc.Height), windowFlags(desc.Flags))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", window.ErrCreateFailed, err)
	}
	if sw == nil {
		return nil, window.ErrCreateFailed
	}

	id, err := sw.GetID()
	if err != nil {
		_ = sw.Destroy()
		return nil, fmt.Errorf("%w: %w", window.ErrCreateFailed, err)
	}

	w := &Window{sys: s, win: sw, id: id, title: title}
	s.windows[id] = w
	gfx.Logger().Debug("sdl: window created", "id", id, "flags", desc.Flags)
	return w, nil
}

// PollEvents drains the SDL event queue and records close requests.
func (s *System) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.mu.Lock()
			s.quit = true
			s.mu.Unlock()
		case *sdl.WindowEvent:
			if e.Event != sdl.WINDOWEVENT_CLOSE {
				continue
			}
			s.mu.Lock()
			if w, ok := s.windows[e.WindowID]; ok {
				w.closing = true
			}
			s.mu.Unlock()
		}
	}
}

// Close shuts SDL down.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if len(s.windows) > 0 {
		gfx.Logger().Warn("sdl: closing with live windows", "count", len(s.windows))
	}
	sdl.Quit()
	return nil
}

// Window wraps an *sdl.Window. It implements window.GLSurface.
type Window struct {
	sys *System

	win     *sdl.Window
	id      uint32
	title   string
	closing bool
	gl      sdl.GLContext
}

var (
	_ window.Window    = (*Window)(nil)
	_ window.GLSurface = (*Window)(nil)
)

// ID returns the SDL window id.
func (w *Window) ID() string { return fmt.Sprintf("sdl-%d", w.id) }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle renames the window unless the title is unchanged.
func (w *Window) SetTitle(title string) {
	title = window.NormalizeTitle(title)
	if w.win == nil || title == w.title {
		return
	}
	w.title = title
	w.win.SetTitle(title)
}

// Rect returns the window geometry.
func (w *Window) Rect() window.Rect {
	if w.win == nil {
		return window.Rect{}
	}
	x, y := w.win.GetPosition()
	width, height := w.win.GetSize()
	return window.Rect{X: int(x), Y: int(y), Width: int(width), Height: int(height)}
}

// ShouldClose reports whether the window or the application received a
// close request.
func (w *Window) ShouldClose() bool {
	w.sys.mu.Lock()
	defer w.sys.mu.Unlock()
	return w.closing || w.sys.quit
}

// Destroy closes the window.
func (w *Window) Destroy() error {
	if w.win == nil {
		return window.ErrDestroyed
	}
	w.DeleteGLContext()

	w.sys.mu.Lock()
	delete(w.sys.windows, w.id)
	w.sys.mu.Unlock()

	err := w.win.Destroy()
	w.win = nil
	return err
}

// CreateGLContext creates an OpenGL context and makes it current.
func (w *Window) CreateGLContext() error {
	if w.win == nil {
		return window.ErrDestroyed
	}
	ctx, err := w.win.GLCreateContext()
	if err != nil {
		return fmt.Errorf("sdl: create gl context: %w", err)
	}
	if err := w.win.GLMakeCurrent(ctx); err != nil {
		sdl.GLDeleteContext(ctx)
		return fmt.Errorf("sdl: make gl context current: %w", err)
	}
	w.gl = ctx
	return nil
}

// SwapGL swaps the OpenGL buffers.
func (w *Window) SwapGL() {
	if w.win != nil {
		w.win.GLSwap()
	}
}

// DeleteGLContext releases the OpenGL context, if any.
func (w *Window) DeleteGLContext() {
	if w.gl != nil {
		sdl.GLDeleteContext(w.gl)
		w.gl = nil
	}
}
