//go:build !noglfw

package main

import (
	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/glfw"
)

func init() {
	windowSystems[glfw.Name] = func() (window.System, error) { return glfw.New() }
}
