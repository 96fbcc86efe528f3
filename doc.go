// Package gfx defines the contract between an engine runtime and its
// pluggable graphics backends.
//
// # Overview
//
// An engine owns exactly one [Instance]. The instance records which graphics
// API is active, the window that API rendered into and the backend-private
// [State]. Backends (see package backend and its sub-packages) are the only
// code that binds and unbinds these fields, and they do so in lockstep: the
// window and the state are either both present or both absent.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gfx"
//		"github.com/gogpu/gfx/backend/vulkan"
//		"github.com/gogpu/gfx/window/headless"
//	)
//
//	inst := gfx.NewInstance(headless.New(), gfx.WithApp("demo", gfx.Version{Major: 1}))
//
//	b := vulkan.New(backend.Config{})
//	if err := b.Init(inst); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Shutdown(inst)
//
//	for {
//		if err := b.Update(inst, 16*time.Millisecond); err != nil {
//			break
//		}
//	}
//
// # Architecture
//
// The module is organized into:
//   - gfx: the shared instance record, API identifiers, logging
//   - window: the windowing contract plus headless, SDL and GLFW systems
//   - backend: the lifecycle controller, registry and one package per API
//   - engine: backend selection with fallback and the frame loop
//   - config: YAML engine configuration
package gfx

// Engine version information.
const (
	// EngineName is used in the initial window title.
	EngineName = "gfx"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Initial window geometry shared by all backends.
const (
	InitialWindowWidth  = 1024
	InitialWindowHeight = 768
)
