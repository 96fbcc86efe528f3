// Package window defines the windowing contract consumed by graphics
// backends.
//
// A backend never talks to an OS windowing library directly. It builds a
// [Descriptor] and hands it to the [System] stored in the engine instance.
// Three systems are provided:
//   - headless: in-memory windows for tests and servers
//   - sdl: SDL2 windows via go-sdl2
//   - glfw: GLFW 3.3 windows via go-gl/glfw
package window

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Centered requests a window position centered on the primary display.
const Centered = math.MinInt32

// Flags is the capability set requested for a window.
type Flags uint32

const (
	// Resizable allows the user to resize the window.
	Resizable Flags = 1 << iota

	// HighDPI requests a full resolution drawable on high-DPI displays.
	HighDPI

	// OpenGL makes the window usable with an OpenGL context.
	OpenGL

	// Vulkan makes the window usable as a Vulkan surface.
	Vulkan

	// Metal makes the window usable as a Metal layer.
	Metal
)

// DefaultFlags are requested for every backend window.
const DefaultFlags = Resizable | HighDPI

var flagNames = []struct {
	flag Flags
	name string
}{
	{Resizable, "resizable"},
	{HighDPI, "highdpi"},
	{OpenGL, "opengl"},
	{Vulkan, "vulkan"},
	{Metal, "metal"},
}

// Has reports whether all bits of o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// String returns the set flags joined by '|', or "none".
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Rect is a window position and size in screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Descriptor describes a window to create.
type Descriptor struct {
	Title string

	// Position. Use Centered for either coordinate.
	X, Y int

	Width, Height int

	Flags Flags
}

// Validate checks that the descriptor can be passed to a System.
func (d Descriptor) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	return nil
}

// Window is an OS window created by a System.
type Window interface {
	// ID returns an identifier unique within the System.
	ID() string

	Title() string

	// SetTitle renames the window. Implementations skip the call when the
	// title is unchanged; renaming is slow on some desktops.
	SetTitle(title string)

	// Rect returns the current position and size.
	Rect() Rect

	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool

	// Destroy closes the window. Calling Destroy twice returns ErrDestroyed.
	Destroy() error
}

// System creates windows. It is the only way backends obtain a window.
type System interface {
	// Name returns the system identifier ("headless", "sdl", "glfw").
	Name() string

	// Create opens a window. On failure the window is nil; systems that
	// report no detail return ErrCreateFailed.
	Create(desc Descriptor) (Window, error)

	// PollEvents processes pending OS events.
	PollEvents()

	// Close releases the system. Windows must be destroyed first.
	Close() error
}

// Presenter is implemented by windows that can display a CPU frame.
type Presenter interface {
	Present(img image.Image) error
}

// GLSurface is implemented by windows that can host an OpenGL context.
type GLSurface interface {
	// CreateGLContext creates the context and makes it current.
	CreateGLContext() error

	// SwapGL swaps the front and back buffers.
	SwapGL()

	// DeleteGLContext releases the context.
	DeleteGLContext()
}
