//go:build !noglfw

// Package glfw provides a window.System backed by GLFW 3.3.
//
// GLFW calls must be made from the main thread. Callers should lock the
// main goroutine with runtime.LockOSThread before creating the System.
package glfw

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/window"
)

// Name is the identifier of the GLFW window system.
const Name = "glfw"

// OpenGL context version requested for window.OpenGL windows.
const (
	glMajor = 2
	glMinor = 1
)

// System creates GLFW windows.
type System struct {
	mu     sync.Mutex
	nextID int
	live   int
	closed bool
}

// New initializes GLFW.
func New() (*System, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	return &System{}, nil
}

var _ window.System = (*System)(nil)

// Name returns "glfw".
func (s *System) Name() string { return Name }

func hint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// applyHints translates window.Flags into GLFW window hints.
func applyHints(f window.Flags) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, hint(f.Has(window.Resizable)))
	glfw.WindowHint(glfw.ScaleToMonitor, hint(f.Has(window.HighDPI)))
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, hint(f.Has(window.HighDPI)))

	if f.Has(window.OpenGL) {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	} else {
		// Vulkan and Metal surfaces are created by the backend, not GLFW.
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}
}

// Create opens a GLFW window.
func (s *System) Create(desc window.Descriptor) (window.Window, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, window.ErrSystemClosed
	}

	applyHints(desc.Flags)
	title := window.NormalizeTitle(desc.Title)
	gw, err := glfw.CreateWindow(desc.Width, desc.Height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", window.ErrCreateFailed, err)
	}
	if gw == nil {
		return nil, window.ErrCreateFailed
	}

	screenW, screenH := desc.Width, desc.Height
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			screenW, screenH = mode.Width, mode.Height
		}
	}
	x, y := window.Center(desc, screenW, screenH)
	gw.SetPos(x, y)
	gw.Show()

	s.nextID++
	s.live++
	w := &Window{
		sys:   s,
		win:   gw,
		id:    s.nextID,
		title: title,
		gl:    desc.Flags.Has(window.OpenGL),
	}
	gfx.Logger().Debug("glfw: window created", "id", w.id, "flags", desc.Flags)
	return w, nil
}

// PollEvents processes pending GLFW events.
func (s *System) PollEvents() {
	glfw.PollEvents()
}

// Close terminates GLFW.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.live > 0 {
		gfx.Logger().Warn("glfw: terminating with live windows", "count", s.live)
	}
	glfw.Terminate()
	return nil
}

// Window wraps a *glfw.Window. It implements window.GLSurface when it was
// created with window.OpenGL.
type Window struct {
	sys *System

	win   *glfw.Window
	id    int
	title string
	gl    bool
}

var (
	_ window.Window    = (*Window)(nil)
	_ window.GLSurface = (*Window)(nil)
)

// ID returns the window identifier.
func (w *Window) ID() string { return fmt.Sprintf("glfw-%d", w.id) }

// Title returns the window title. GLFW 3.3 has no title getter, so the
// last title set is cached.
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
	x, y := w.win.GetPos()
	width, height := w.win.GetSize()
	return window.Rect{X: x, Y: y, Width: width, Height: height}
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win == nil || w.win.ShouldClose()
}

// Destroy closes the window.
func (w *Window) Destroy() error {
	if w.win == nil {
		return window.ErrDestroyed
	}
	w.win.Destroy()
	w.win = nil

	w.sys.mu.Lock()
	w.sys.live--
	w.sys.mu.Unlock()
	return nil
}

// CreateGLContext makes the window's OpenGL context current.
func (w *Window) CreateGLContext() error {
	if w.win == nil {
		return window.ErrDestroyed
	}
	if !w.gl {
		return fmt.Errorf("glfw: window %d was created without an OpenGL context", w.id)
	}
	w.win.MakeContextCurrent()
	return nil
}

// SwapGL swaps the OpenGL buffers.
func (w *Window) SwapGL() {
	if w.win != nil && w.gl {
		w.win.SwapBuffers()
	}
}

// DeleteGLContext detaches the context from the calling thread. The
// context itself is owned by the window and dies with it.
func (w *Window) DeleteGLContext() {
	if w.gl {
		glfw.DetachCurrentContext()
	}
}
