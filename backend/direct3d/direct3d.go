// Package direct3d registers the Direct3D 12 graphics backend under
// "direct3d". Windows need no extra surface flag for it.
package direct3d

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/backend/internal/gpubackend"
)

func init() {
	backend.Register(backend.BackendDirect3D, func(cfg backend.Config) backend.Backend {
		return New(cfg)
	})
}

// State is the Direct3D state block.
type State = gpubackend.State

// New creates the Direct3D backend.
func New(cfg backend.Config) *backend.Controller {
	d := gpubackend.New(gfx.APIDirect3D, gputypes.BackendDX12, 0, cfg)
	return backend.NewController(backend.BackendDirect3D, d)
}
