package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/headless"
)

// windowSystems maps window system names to constructors. Systems behind
// build tags add themselves from init.
var windowSystems = map[string]func() (window.System, error){
	headless.Name: func() (window.System, error) { return headless.New(), nil },
}

func windowSystemNames() string {
	names := make([]string, 0, len(windowSystems))
	for name := range windowSystems {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func openWindowSystem(name string) (window.System, error) {
	open, ok := windowSystems[name]
	if !ok {
		return nil, fmt.Errorf("window system %q not built in (have %s)", name, windowSystemNames())
	}
	return open()
}
