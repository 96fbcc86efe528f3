package backend

import (
	"errors"
	"image/color"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/window"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned by Update when the backend is not the
	// one bound to the instance.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrBackendActive is returned by Init when the instance already has a
	// backend bound. Shut it down first.
	ErrBackendActive = errors.New("backend: another backend is active")

	// ErrWindowCreation is returned by Init when the window system
	// produced no window.
	ErrWindowCreation = errors.New("backend: window creation failed")

	// ErrAttach is returned by Init when backend setup on the new window failed.
	ErrAttach = errors.New("backend: attach failed")

	// ErrFrame wraps per-frame failures reported by Update.
	ErrFrame = errors.New("backend: frame failed")
)

// Backend is the lifecycle contract every graphics backend satisfies.
//
// Calls follow Init → Update* → Shutdown. Shutdown may be called at any
// time and does nothing when the backend is not bound to the instance.
type Backend interface {
	// Name returns the registry key (e.g., "vulkan", "metal").
	Name() string

	// API returns the graphics API the backend binds.
	API() gfx.API

	// Init allocates the backend state, creates the window and binds both
	// to inst. On failure everything acquired is released and inst is
	// left untouched.
	Init(inst *gfx.Instance) error

	// Update runs one frame. Errors are returned to the caller, which
	// decides whether to shut down.
	Update(inst *gfx.Instance, delta time.Duration) error

	// Shutdown releases the state and destroys the window.
	Shutdown(inst *gfx.Instance)
}

// Driver supplies the backend-specific parts of a Controller.
type Driver interface {
	// API returns the graphics API the driver implements.
	API() gfx.API

	// Surface returns the window capability the API needs.
	Surface() window.Flags

	// Allocate returns a fresh, zero-initialized state.
	Allocate() gfx.State

	// Attach finishes setup once the window exists.
	Attach(st gfx.State, w window.Window) error

	// Frame performs per-frame work.
	Frame(st gfx.State, w window.Window, delta time.Duration) error
}

// Config holds settings shared by all backend factories.
type Config struct {
	// RequestDevice makes GPU backends open a device during Init.
	RequestDevice bool

	// PowerPreference selects the GPU adapter when RequestDevice is set.
	PowerPreference gputypes.PowerPreference

	// Provider, when set, is a host device adopted instead of opening one.
	Provider gpucontext.DeviceProvider

	// ClearColor is the color frames are cleared to.
	ClearColor color.RGBA
}

// DefaultClearColor is used when Config.ClearColor is zero.
var DefaultClearColor = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

// Clear returns the configured clear color or DefaultClearColor.
func (c Config) Clear() color.RGBA {
	if c.ClearColor == (color.RGBA{}) {
		return DefaultClearColor
	}
	return c.ClearColor
}
