package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a semantic version.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// EngineVersion returns the version of this module.
func EngineVersion() Version {
	return Version{Major: VersionMajor, Minor: VersionMinor, Patch: VersionPatch}
}

// AppInfo identifies the application running on the engine.
type AppInfo struct {
	Name    string
	Version Version
}

// BuildInfo describes how the engine was built.
type BuildInfo struct {
	Branch string
	Commit string
	Type   string
}

// InstanceOption configures an Instance during creation.
//
// Example:
//
//	inst := gfx.NewInstance(ws,
//		gfx.WithApp("demo", gfx.Version{Major: 1}),
//		gfx.WithBuild(gfx.BuildInfo{Branch: "main", Commit: "abc123", Type: "release"}))
type InstanceOption func(*instanceOptions)

type instanceOptions struct {
	app   AppInfo
	build BuildInfo
}

func defaultOptions() instanceOptions {
	return instanceOptions{
		app:   AppInfo{Name: EngineName, Version: EngineVersion()},
		build: BuildInfo{Branch: "unknown", Commit: "unknown", Type: "debug"},
	}
}

// WithApp sets the application name and version.
func WithApp(name string, v Version) InstanceOption {
	return func(o *instanceOptions) {
		if name != "" {
			o.app.Name = name
		}
		o.app.Version = v
	}
}

// WithBuild sets the engine build information. Empty fields keep their
// defaults.
func WithBuild(b BuildInfo) InstanceOption {
	return func(o *instanceOptions) {
		if b.Branch != "" {
			o.build.Branch = b.Branch
		}
		if b.Commit != "" {
			o.build.Commit = b.Commit
		}
		if b.Type != "" {
			o.build.Type = b.Type
		}
	}
}

// ParseVersion parses "major[.minor[.patch]]".
func ParseVersion(s string) (Version, error) {
	var v Version
	parts := [3]*int{&v.Major, &v.Minor, &v.Patch}
	fields := strings.Split(s, ".")
	if s == "" || len(fields) > len(parts) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	for n, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil || x < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		*parts[n] = x
	}
	return v, nil
}
