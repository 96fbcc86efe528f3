// Package metal registers the Metal graphics backend under "metal".
//
// The Metal HAL is not linked by this package. Without
// Config.RequestDevice the backend runs without a device, which is how it
// is exercised on non-Apple hosts.
package metal

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/backend/internal/gpubackend"
	"github.com/gogpu/gfx/window"
)

func init() {
	backend.Register(backend.BackendMetal, func(cfg backend.Config) backend.Backend {
		return New(cfg)
	})
}

// State is the Metal state block.
type State = gpubackend.State

// New creates the Metal backend.
func New(cfg backend.Config) *backend.Controller {
	d := gpubackend.New(gfx.APIMetal, gputypes.BackendMetal, window.Metal, cfg)
	return backend.NewController(backend.BackendMetal, d)
}
