package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a new backend instance.
type Factory func(cfg Config) Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Backend name constants. They match gfx.API.Key.
const (
	BackendSoftware = "software"
	BackendOpenGL   = "opengl"
	BackendVulkan   = "vulkan"
	BackendDirect3D = "direct3d"
	BackendMetal    = "metal"
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new backend instance by name.
func Get(name string, cfg Config) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	b := factory(cfg)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return b, nil
}

// Priority returns the selection order for an operating system (a
// runtime.GOOS value), best first. Software is always the last resort.
func Priority(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return []string{BackendMetal, BackendVulkan, BackendOpenGL, BackendSoftware}
	case "windows":
		return []string{BackendDirect3D, BackendVulkan, BackendOpenGL, BackendSoftware}
	default:
		return []string{BackendVulkan, BackendOpenGL, BackendSoftware}
	}
}
