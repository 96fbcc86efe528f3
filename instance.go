package gfx

import (
	"fmt"
	"sync"

	"github.com/gogpu/gfx/window"
)

// State is the private data of the bound backend. Each backend package has
// its own concrete State type; API reports which one a value is.
//
// A State is allocated fresh by every successful or failed init and is
// released exactly once.
type State interface {
	// API returns the API the state belongs to.
	API() API

	// Release frees everything the state owns.
	Release()
}

// Instance is the engine's shared record of the active graphics backend.
//
// The bound API, window and state change together: after Bind all three
// are set, after Unbind all three are cleared. No caller outside a
// backend's Init can observe one without the others.
//
// Instance is safe for concurrent use. Backends are still expected to be
// driven from a single goroutine.
type Instance struct {
	mu sync.RWMutex

	api    API
	window window.Window
	state  State
	rect   window.Rect

	windows window.System
	app     AppInfo
	build   BuildInfo
}

// NewInstance creates an engine instance that creates windows with ws.
// With a nil ws every backend Init fails with a window creation error.
func NewInstance(ws window.System, opts ...InstanceOption) *Instance {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Instance{
		windows: ws,
		app:     o.app,
		build:   o.build,
	}
}

// Windows returns the window system backends must use.
func (i *Instance) Windows() window.System { return i.windows }

// App returns the application information.
func (i *Instance) App() AppInfo { return i.app }

// Build returns the engine build information.
func (i *Instance) Build() BuildInfo { return i.build }

// API returns the bound API, or APINone.
func (i *Instance) API() API {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.api
}

// Window returns the bound window, or nil.
func (i *Instance) Window() window.Window {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.window
}

// State returns the bound backend state, or nil.
func (i *Instance) State() State {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// Active reports whether a backend is bound.
func (i *Instance) Active() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state != nil
}

// Bound returns the API, window and state under one lock.
func (i *Instance) Bound() (API, window.Window, State) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.api, i.window, i.state
}

// Bind records a fully initialized backend.
func (i *Instance) Bind(api API, w window.Window, st State) error {
	if !api.Valid() || w == nil || st == nil {
		return ErrIncompleteBinding
	}
	if st.API() != api {
		return fmt.Errorf("%w: state is %v, binding %v", ErrStateMismatch, st.API(), api)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state != nil {
		return fmt.Errorf("%w: %v", ErrAlreadyBound, i.api)
	}
	i.api, i.window, i.state = api, w, st
	i.rect = w.Rect()
	return nil
}

// Unbind clears the record and hands ownership of the window and state to
// the caller. Both are nil when nothing was bound.
func (i *Instance) Unbind() (window.Window, State) {
	i.mu.Lock()
	defer i.mu.Unlock()
	w, st := i.window, i.state
	i.api, i.window, i.state = APINone, nil, nil
	i.rect = window.Rect{}
	return w, st
}

// UnbindAPI is Unbind restricted to api: when another API (or none) is
// bound the record is left alone and nils are returned.
func (i *Instance) UnbindAPI(api API) (window.Window, State) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state == nil || i.api != api {
		return nil, nil
	}
	w, st := i.window, i.state
	i.api, i.window, i.state = APINone, nil, nil
	i.rect = window.Rect{}
	return w, st
}

// WindowRect returns the geometry recorded for the bound window.
func (i *Instance) WindowRect() window.Rect {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.rect
}

// RefreshWindowRect re-reads the bound window's geometry and returns it.
func (i *Instance) RefreshWindowRect() window.Rect {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.window != nil {
		i.rect = i.window.Rect()
	}
	return i.rect
}

// InitialWindowTitle returns the title given to a new window for api.
//
//	<app> v<version> - <API> - <engine> v<version>+<branch>-<commit>-<build type>
func (i *Instance) InitialWindowTitle(api API) string {
	return fmt.Sprintf("%s v%s - %s - %s v%s+%s-%s-%s",
		i.app.Name, i.app.Version, api, EngineName, EngineVersion(),
		i.build.Branch, i.build.Commit, i.build.Type)
}
