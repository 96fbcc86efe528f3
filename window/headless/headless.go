// Package headless provides an in-memory window.System.
//
// Headless windows have no OS presence. They record every frame presented
// to them, which makes them the default system for tests, servers and CI.
// Window creation failure can be injected with System.Fail.
package headless

import (
	"image"
	"image/draw"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/gfx/window"
)

// Name is the identifier of the headless window system.
const Name = "headless"

// Default virtual screen used to resolve centered positions.
const (
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)

// Option configures a headless System.
type Option func(*System)

// WithScreen sets the virtual screen size.
func WithScreen(width, height int) Option {
	return func(s *System) {
		s.screenW, s.screenH = width, height
	}
}

// WithCloseAfter makes every window request closing after n calls to
// PollEvents. Zero disables automatic closing.
func WithCloseAfter(n int) Option {
	return func(s *System) {
		s.closeAfter = n
	}
}

// System is an in-memory window system. It is safe for concurrent use.
type System struct {
	mu sync.Mutex

	screenW, screenH int
	closeAfter       int
	polls            int

	fail    bool
	failErr error

	windows   map[string]*Window
	created   int
	destroyed int
	closed    bool
}

// New creates a headless window system.
func New(opts ...Option) *System {
	s := &System{
		screenW: DefaultScreenWidth,
		screenH: DefaultScreenHeight,
		windows: make(map[string]*Window),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ window.System = (*System)(nil)

// Name returns "headless".
func (s *System) Name() string { return Name }

// Fail makes every following Create return no window. With a nil err the
// system models a null handle: Create returns (nil, nil).
func (s *System) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = true
	s.failErr = err
}

// Recover undoes Fail.
func (s *System) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = false
	s.failErr = nil
}

// Create opens an in-memory window.
func (s *System) Create(desc window.Descriptor) (window.Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, window.ErrSystemClosed
	}
	if s.fail {
		if s.failErr != nil {
			return nil, s.failErr
		}
		return nil, nil
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	x, y := window.Center(desc, s.screenW, s.screenH)
	w := &Window{
		sys:   s,
		id:    uuid.NewString(),
		title: window.NormalizeTitle(desc.Title),
		flags: desc.Flags,
		rect:  window.Rect{X: x, Y: y, Width: desc.Width, Height: desc.Height},
	}
	s.windows[w.id] = w
	s.created++
	return w, nil
}

// PollEvents advances the event counter used by WithCloseAfter.
func (s *System) PollEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
}

// Close releases the system. Live windows are destroyed.
func (s *System) Close() error {
	s.mu.Lock()
	live := make([]*Window, 0, len(s.windows))
	for _, w := range s.windows {
		live = append(live, w)
	}
	s.closed = true
	s.mu.Unlock()

	for _, w := range live {
		_ = w.Destroy()
	}
	return nil
}

// Created returns the number of windows created so far.
func (s *System) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}

// Destroyed returns the number of windows destroyed so far.
func (s *System) Destroyed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// Live returns the number of windows not yet destroyed.
func (s *System) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

func (s *System) shouldClose() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeAfter > 0 && s.polls >= s.closeAfter
}

func (s *System) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, id)
	s.destroyed++
}

// Window is an in-memory window. It implements window.Presenter.
type Window struct {
	sys *System

	mu        sync.Mutex
	id        string
	title     string
	flags     window.Flags
	rect      window.Rect
	closing   bool
	destroyed bool

	frame    *image.RGBA
	presents int
	renames  int
}

var (
	_ window.Window    = (*Window)(nil)
	_ window.Presenter = (*Window)(nil)
)

// ID returns the window UUID.
func (w *Window) ID() string { return w.id }

// Title returns the current title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetTitle renames the window unless the title is unchanged.
func (w *Window) SetTitle(title string) {
	title = window.NormalizeTitle(title)
	w.mu.Lock()
	defer w.mu.Unlock()
	if title == w.title {
		return
	}
	w.title = title
	w.renames++
}

// Renames returns the number of title changes applied by SetTitle.
func (w *Window) Renames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.renames
}

// Flags returns the flags the window was created with.
func (w *Window) Flags() window.Flags { return w.flags }

// Rect returns the window geometry.
func (w *Window) Rect() window.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rect
}

// Resize changes the window size, as a user drag would.
// Windows created without window.Resizable ignore the call.
func (w *Window) Resize(width, height int) {
	if !w.flags.Has(window.Resizable) || width <= 0 || height <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rect.Width, w.rect.Height = width, height
}

// RequestClose marks the window as asked to close.
func (w *Window) RequestClose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closing = true
}

// ShouldClose reports whether closing was requested.
func (w *Window) ShouldClose() bool {
	w.mu.Lock()
	closing := w.closing
	w.mu.Unlock()
	return closing || w.sys.shouldClose()
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Destroy removes the window from its system.
func (w *Window) Destroy() error {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return window.ErrDestroyed
	}
	w.destroyed = true
	w.frame = nil
	w.mu.Unlock()

	w.sys.release(w.id)
	return nil
}

// Present copies img into the window's front buffer.
func (w *Window) Present(img image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return window.ErrDestroyed
	}
	b := img.Bounds()
	if w.frame == nil || w.frame.Bounds() != b {
		w.frame = image.NewRGBA(b)
	}
	draw.Draw(w.frame, b, img, b.Min, draw.Src)
	w.presents++
	return nil
}

// Frame returns the last presented frame, or nil.
func (w *Window) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame
}

// Presents returns the number of frames presented.
func (w *Window) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}
