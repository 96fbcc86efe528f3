// Package backend provides the pluggable graphics backend abstraction.
//
// Every graphics API is implemented as a Driver wrapped in a Controller.
// The Controller enforces the lifecycle shared by all backends:
//
//	UNINITIALIZED --Init ok--------------------> ACTIVE
//	UNINITIALIZED --Init failed (rolled back)--> UNINITIALIZED
//	ACTIVE        --Update (any result)--------> ACTIVE
//	ACTIVE        --Shutdown-------------------> UNINITIALIZED
//
// Init builds the state and window locally and binds them to the instance
// only once every step has succeeded. Any failing step releases what was
// acquired so far, so a failed Init leaves the instance exactly as it was.
// Shutdown releases the state and destroys the window Init created.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/gfx/backend/vulkan"
//
//	b, err := backend.Get("vulkan", backend.Config{})
//
// # Available Backends
//
//   - "software": CPU frame buffer presented to the window (always works)
//   - "opengl": OpenGL 2.1 via go-gl, needs a window.GLSurface
//   - "vulkan", "metal", "direct3d": GPU device via gogpu/wgpu HAL
package backend
