//go:build !nosdl

package main

import (
	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/sdl"
)

func init() {
	windowSystems[sdl.Name] = func() (window.System, error) { return sdl.New() }
}
