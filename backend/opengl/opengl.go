// Package opengl registers the OpenGL 2.1 graphics backend under "opengl".
//
// The window must implement window.GLSurface; the sdl and glfw systems do,
// headless windows do not.
package opengl

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/window"
)

// ErrNoGLSurface is returned by Init when the window cannot host a context.
var ErrNoGLSurface = errors.New("opengl: window has no GL surface")

func init() {
	backend.Register(backend.BackendOpenGL, func(cfg backend.Config) backend.Backend {
		return New(cfg)
	})
}

// State is the OpenGL state block.
type State struct {
	surface window.GLSurface
	version string
	frames  uint64
}

// API returns gfx.APIOpenGL.
func (s *State) API() gfx.API { return gfx.APIOpenGL }

// Version returns the GL_VERSION string of the context.
func (s *State) Version() string { return s.version }

// Frames returns the number of frames swapped.
func (s *State) Frames() uint64 { return s.frames }

// Release deletes the GL context.
func (s *State) Release() {
	if s.surface != nil {
		s.surface.DeleteGLContext()
		s.surface = nil
	}
}

// commands is the subset of GL the backend issues against the current
// context.
type commands interface {
	Load() error
	Version() string
	Clear(r window.Rect, c color.RGBA)
}

type driver struct {
	clear color.RGBA
	gl    commands
}

// New creates the OpenGL backend.
func New(cfg backend.Config) *backend.Controller {
	return newController(cfg, goGL{})
}

func newController(cfg backend.Config, cmds commands) *backend.Controller {
	return backend.NewController(backend.BackendOpenGL, &driver{clear: cfg.Clear(), gl: cmds})
}

func (d *driver) API() gfx.API          { return gfx.APIOpenGL }
func (d *driver) Surface() window.Flags { return window.OpenGL }
func (d *driver) Allocate() gfx.State   { return new(State) }

func (d *driver) Attach(st gfx.State, w window.Window) error {
	s := st.(*State)
	gs, ok := w.(window.GLSurface)
	if !ok {
		return ErrNoGLSurface
	}
	if err := gs.CreateGLContext(); err != nil {
		return err
	}
	// From here on Release deletes the context.
	s.surface = gs

	if err := d.gl.Load(); err != nil {
		return fmt.Errorf("opengl: load functions: %w", err)
	}
	s.version = d.gl.Version()
	gfx.Logger().Debug("opengl: context created", "version", s.version)
	return nil
}

func (d *driver) Frame(st gfx.State, w window.Window, _ time.Duration) error {
	s := st.(*State)
	d.gl.Clear(w.Rect(), d.clear)
	s.surface.SwapGL()
	s.frames++
	return nil
}
