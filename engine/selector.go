package engine

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
)

// ErrNoBackend is returned when no backend of the preference list could
// be initialized.
var ErrNoBackend = errors.New("engine: unable to initialize any graphics API")

// Selector picks the first working backend of a preference list.
type Selector struct {
	cfg    backend.Config
	active backend.Backend
}

// NewSelector creates a selector passing cfg to backend factories.
func NewSelector(cfg backend.Config) *Selector {
	return &Selector{cfg: cfg}
}

// DefaultOrder returns the preference list for the running OS.
func DefaultOrder() []string {
	return backend.Priority(runtime.GOOS)
}

// Active returns the selected backend, or nil.
func (s *Selector) Active() backend.Backend { return s.active }

// Init tries each named backend in order until one initializes. An empty
// list means DefaultOrder. Unregistered names are skipped. When all fail,
// the returned error joins ErrNoBackend with every backend's error.
func (s *Selector) Init(inst *gfx.Instance, names []string) (backend.Backend, error) {
	if api := inst.API(); api != gfx.APINone {
		return nil, fmt.Errorf("%w: %v", backend.ErrBackendActive, api)
	}
	if len(names) == 0 {
		names = DefaultOrder()
	}

	log := gfx.Logger()
	errs := []error{ErrNoBackend}
	for _, name := range names {
		b, err := backend.Get(name, s.cfg)
		if err != nil {
			log.Debug("engine: backend skipped", "backend", name, "err", err)
			errs = append(errs, err)
			continue
		}
		if err := b.Init(inst); err != nil {
			log.Error("engine: backend failed to initialize", "backend", name, "err", err)
			errs = append(errs, err)
			continue
		}

		rect := inst.RefreshWindowRect()
		s.active = b
		log.Info("engine: graphics API initialized", "backend", name, "api", b.API(), "window", rect)
		return b, nil
	}

	log.Error("engine: unable to initialize any graphics API", "tried", names)
	return nil, errors.Join(errs...)
}

// Update runs one frame of the active backend.
func (s *Selector) Update(inst *gfx.Instance, delta time.Duration) error {
	if s.active == nil {
		return backend.ErrNotInitialized
	}
	return s.active.Update(inst, delta)
}

// Shutdown shuts the active backend down. It does nothing when no backend
// is active.
func (s *Selector) Shutdown(inst *gfx.Instance) {
	if s.active == nil {
		return
	}
	gfx.Logger().Warn("engine: shutting down graphics API", "backend", s.active.Name())
	s.active.Shutdown(inst)
	s.active = nil
}
