// Package vulkan registers the Vulkan graphics backend.
//
// Importing the package links the wgpu Vulkan HAL and registers the
// backend under "vulkan":
//
//	import _ "github.com/gogpu/gfx/backend/vulkan"
package vulkan

import (
	"github.com/gogpu/gputypes"
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/backend/internal/gpubackend"
	"github.com/gogpu/gfx/window"
)

func init() {
	backend.Register(backend.BackendVulkan, func(cfg backend.Config) backend.Backend {
		return New(cfg)
	})
}

// State is the Vulkan state block.
type State = gpubackend.State

// New creates the Vulkan backend.
func New(cfg backend.Config) *backend.Controller {
	d := gpubackend.New(gfx.APIVulkan, gputypes.BackendVulkan, window.Vulkan, cfg)
	return backend.NewController(backend.BackendVulkan, d)
}
