package backend

import (
	"fmt"
	"time"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/window"
)

// Controller implements Backend on top of a Driver. It owns the ordering
// rules of the lifecycle: what may be called when, and what is released
// when Init fails partway.
type Controller struct {
	name   string
	driver Driver
}

// NewController creates a Controller registered under name.
func NewController(name string, d Driver) *Controller {
	return &Controller{name: name, driver: d}
}

var _ Backend = (*Controller)(nil)

// Name returns the backend identifier.
func (c *Controller) Name() string { return c.name }

// API returns the graphics API of the driver.
func (c *Controller) API() gfx.API { return c.driver.API() }

// Driver returns the underlying driver.
func (c *Controller) Driver() Driver { return c.driver }

// Descriptor returns the window requested by Init for inst.
func (c *Controller) Descriptor(inst *gfx.Instance) window.Descriptor {
	return window.Descriptor{
		Title:  inst.InitialWindowTitle(c.API()),
		X:      window.Centered,
		Y:      window.Centered,
		Width:  gfx.InitialWindowWidth,
		Height: gfx.InitialWindowHeight,
		Flags:  window.DefaultFlags | c.driver.Surface(),
	}
}

// Init allocates the state, creates the window, attaches the driver and
// binds all of it to inst. Nothing is bound unless every step succeeds.
func (c *Controller) Init(inst *gfx.Instance) error {
	api := c.API()
	if active := inst.API(); active != gfx.APINone {
		return fmt.Errorf("%w: %v", ErrBackendActive, active)
	}

	ws := inst.Windows()
	if ws == nil {
		return fmt.Errorf("%w: %s: no window system", ErrWindowCreation, c.name)
	}

	st := c.driver.Allocate()
	gfx.Logger().Debug("backend: state allocated", "backend", c.name)

	w, err := ws.Create(c.Descriptor(inst))
	if err == nil && w == nil {
		err = window.ErrCreateFailed
	}
	if err != nil {
		c.release(st, nil)
		return fmt.Errorf("%w: %s: %w", ErrWindowCreation, c.name, err)
	}

	if err := c.driver.Attach(st, w); err != nil {
		c.release(st, w)
		return fmt.Errorf("%w: %s: %w", ErrAttach, c.name, err)
	}

	if err := inst.Bind(api, w, st); err != nil {
		c.release(st, w)
		return err
	}

	gfx.Logger().Info("backend: initialized", "backend", c.name, "window", w.Rect())
	return nil
}

// Update runs one frame of the bound backend.
func (c *Controller) Update(inst *gfx.Instance, delta time.Duration) error {
	api, w, st := inst.Bound()
	if st == nil || api != c.API() {
		return fmt.Errorf("%w: %s", ErrNotInitialized, c.name)
	}
	if err := c.driver.Frame(st, w, delta); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFrame, c.name, err)
	}
	return nil
}

// Shutdown unbinds and releases the backend. It is a no-op when this
// backend is not the bound one, so calling it twice is safe.
func (c *Controller) Shutdown(inst *gfx.Instance) {
	w, st := inst.UnbindAPI(c.API())
	if st == nil {
		gfx.Logger().Debug("backend: shutdown ignored, not bound", "backend", c.name)
		return
	}
	c.release(st, w)
	gfx.Logger().Info("backend: shut down", "backend", c.name)
}

// release frees what Init acquired, state first since it may hold
// resources tied to the window. Both shutdown and failed inits go through
// here, once per allocated state.
func (c *Controller) release(st gfx.State, w window.Window) {
	if st != nil {
		st.Release()
	}
	if w != nil {
		if err := w.Destroy(); err != nil {
			gfx.Logger().Warn("backend: window destroy failed", "backend", c.name, "err", err)
		}
	}
}
