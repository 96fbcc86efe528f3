// Package software registers the CPU graphics backend under "software".
//
// Frames are drawn into an RGBA back buffer and handed to windows that
// implement window.Presenter. It needs no GPU and no surface flag, so it
// is the last entry of every selection order.
package software

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/window"
)

func init() {
	backend.Register(backend.BackendSoftware, func(cfg backend.Config) backend.Backend {
		return New(cfg)
	})
}

// Painter draws one frame into dst. dst holds the previous frame, scaled
// to the new size if the window was resized.
type Painter func(dst *image.RGBA, delta time.Duration)

// State is the software state block.
type State struct {
	buf    *image.RGBA
	frames uint64
}

// API returns gfx.APISoftware.
func (s *State) API() gfx.API { return gfx.APISoftware }

// Buffer returns the back buffer, nil before attach and after release.
func (s *State) Buffer() *image.RGBA { return s.buf }

// Frames returns the number of frames drawn.
func (s *State) Frames() uint64 { return s.frames }

// Release returns the back buffer to the pool.
func (s *State) Release() {
	buffers.put(s.buf)
	s.buf = nil
}

type driver struct {
	clear   color.RGBA
	painter Painter
}

// New creates the software backend. Frames are cleared to the configured
// clear color.
func New(cfg backend.Config) *backend.Controller {
	return NewWithPainter(cfg, nil)
}

// NewWithPainter creates the software backend drawing frames with p.
// A nil p clears every frame.
func NewWithPainter(cfg backend.Config, p Painter) *backend.Controller {
	return backend.NewController(backend.BackendSoftware, &driver{clear: cfg.Clear(), painter: p})
}

func (d *driver) API() gfx.API          { return gfx.APISoftware }
func (d *driver) Surface() window.Flags { return 0 }
func (d *driver) Allocate() gfx.State   { return new(State) }

func (d *driver) Attach(st gfx.State, w window.Window) error {
	s := st.(*State)
	r := w.Rect()
	s.buf = buffers.get(r.Width, r.Height)
	d.fill(s.buf)
	return nil
}

func (d *driver) Frame(st gfx.State, w window.Window, delta time.Duration) error {
	s := st.(*State)
	r := w.Rect()
	if b := s.buf.Bounds(); b.Dx() != r.Width || b.Dy() != r.Height {
		s.buf = rescale(s.buf, r.Width, r.Height)
	}

	if d.painter != nil {
		d.painter(s.buf, delta)
	} else {
		d.fill(s.buf)
	}
	s.frames++

	if p, ok := w.(window.Presenter); ok {
		return p.Present(s.buf)
	}
	return nil
}

func (d *driver) fill(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(d.clear), image.Point{}, draw.Src)
}

// rescale returns src scaled into a width x height buffer. src goes back
// to the pool.
func rescale(src *image.RGBA, width, height int) *image.RGBA {
	dst := buffers.get(width, height)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	buffers.put(src)
	return dst
}
