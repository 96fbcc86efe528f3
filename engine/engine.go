package engine

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/window"
)

var (
	// ErrNotStarted is returned by Run before Start.
	ErrNotStarted = errors.New("engine: not started")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("engine: closed")
)

// Config configures an Engine.
type Config struct {
	// Backends is the preference list. Empty means DefaultOrder.
	Backends []string

	// Backend is passed to backend factories.
	Backend backend.Config

	// MaxFrames stops Run after that many frames. Zero runs until stopped.
	MaxFrames uint64
}

// Frame describes one iteration of the loop.
type Frame struct {
	Index  uint64
	Delta  time.Duration
	Window window.Window
}

// FrameFunc is called once per frame before the backend updates.
// Returning false stops the loop.
type FrameFunc func(f Frame) bool

// Engine owns an instance and the backend selected for it.
type Engine struct {
	cfg  Config
	inst *gfx.Instance
	sel  *Selector
	now  func() time.Time

	frames  uint64
	started bool
	closed  bool
}

// New creates an engine drawing into windows of ws.
func New(ws window.System, cfg Config, opts ...gfx.InstanceOption) *Engine {
	return &Engine{
		cfg:  cfg,
		inst: gfx.NewInstance(ws, opts...),
		sel:  NewSelector(cfg.Backend),
		now:  time.Now,
	}
}

// Instance returns the shared instance record.
func (e *Engine) Instance() *gfx.Instance { return e.inst }

// Backend returns the selected backend, or nil before Start.
func (e *Engine) Backend() backend.Backend { return e.sel.Active() }

// Frames returns the number of frames run.
func (e *Engine) Frames() uint64 { return e.frames }

// Start selects and initializes a backend.
func (e *Engine) Start() error {
	if e.closed {
		return ErrClosed
	}
	if _, err := e.sel.Init(e.inst, e.cfg.Backends); err != nil {
		return err
	}
	e.started = true
	return nil
}

// Run drives frames until ctx is done, the window asks to close, fn
// returns false, MaxFrames is reached or a frame fails. Cancellation
// returns ctx.Err(); the other stop conditions return nil or the frame
// error. A nil fn just updates the backend.
func (e *Engine) Run(ctx context.Context, fn FrameFunc) error {
	if e.closed {
		return ErrClosed
	}
	if !e.started {
		return ErrNotStarted
	}

	ws := e.inst.Windows()
	last := e.now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.cfg.MaxFrames > 0 && e.frames >= e.cfg.MaxFrames {
			return nil
		}

		ws.PollEvents()
		w := e.inst.Window()
		if w == nil || w.ShouldClose() {
			gfx.Logger().Info("engine: window closed", "frames", e.frames)
			return nil
		}
		e.inst.RefreshWindowRect()

		now := e.now()
		delta := now.Sub(last)
		last = now

		if fn != nil && !fn(Frame{Index: e.frames, Delta: delta, Window: w}) {
			return nil
		}
		if err := e.sel.Update(e.inst, delta); err != nil {
			return err
		}
		e.frames++
	}
}

// Close shuts the backend down and closes the window system. It is safe
// to call more than once.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.sel.Shutdown(e.inst)
	return e.inst.Windows().Close()
}
