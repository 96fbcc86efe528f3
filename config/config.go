// Package config loads the engine configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/engine"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Window systems accepted in window.system.
var WindowSystems = []string{"headless", "sdl", "glfw"}

// Power preferences accepted in gpu.power_preference.
const (
	PowerDefault         = ""
	PowerLowPower        = "low-power"
	PowerHighPerformance = "high-performance"
)

// Config is the engine configuration file.
type Config struct {
	App        App      `yaml:"app"`
	Build      Build    `yaml:"build"`
	Window     Window   `yaml:"window"`
	Backends   []string `yaml:"backends"`
	GPU        GPU      `yaml:"gpu"`
	ClearColor string   `yaml:"clear_color"`
	MaxFrames  uint64   `yaml:"max_frames"`
	Log        Log      `yaml:"log"`
}

// App names the application shown in window titles.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Build describes the engine build shown in window titles.
type Build struct {
	Branch string `yaml:"branch"`
	Commit string `yaml:"commit"`
	Type   string `yaml:"type"`
}

// Window selects the window system.
type Window struct {
	System string `yaml:"system"`
}

// GPU configures device acquisition for GPU backends.
type GPU struct {
	RequestDevice   bool   `yaml:"request_device"`
	PowerPreference string `yaml:"power_preference"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `yaml:"level"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		App:        App{Name: gfx.EngineName, Version: gfx.EngineVersion().String()},
		Build:      Build{Branch: "unknown", Commit: "unknown", Type: "debug"},
		Window:     Window{System: "headless"},
		ClearColor: "#202028",
		Log:        Log{Level: "warn"},
	}
}

// Load reads and validates the YAML file at path. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML data over Defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field. Backend names are rewritten to their
// registry keys, so "Vulkan" becomes "vulkan".
func (c *Config) Validate() error {
	if strings.TrimSpace(c.App.Name) == "" {
		return fmt.Errorf("%w: app.name is empty", ErrInvalid)
	}
	if _, err := gfx.ParseVersion(c.App.Version); err != nil {
		return fmt.Errorf("%w: app.version: %w", ErrInvalid, err)
	}
	if !slices.Contains(WindowSystems, c.Window.System) {
		return fmt.Errorf("%w: window.system %q, want one of %v", ErrInvalid, c.Window.System, WindowSystems)
	}
	seen := make(map[string]bool, len(c.Backends))
	for i, name := range c.Backends {
		api, err := gfx.ParseAPI(name)
		if err != nil {
			return fmt.Errorf("%w: backends: %w", ErrInvalid, err)
		}
		key := api.Key()
		if seen[key] {
			return fmt.Errorf("%w: backends: %q listed twice", ErrInvalid, key)
		}
		seen[key] = true
		c.Backends[i] = key
	}
	if _, err := c.powerPreference(); err != nil {
		return err
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return fmt.Errorf("%w: clear_color: %w", ErrInvalid, err)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// InstanceOptions returns the instance options for the app and build.
func (c *Config) InstanceOptions() []gfx.InstanceOption {
	v, _ := gfx.ParseVersion(c.App.Version)
	return []gfx.InstanceOption{
		gfx.WithApp(c.App.Name, v),
		gfx.WithBuild(gfx.BuildInfo{Branch: c.Build.Branch, Commit: c.Build.Commit, Type: c.Build.Type}),
	}
}

// Engine returns the engine configuration. c must be valid.
func (c *Config) Engine() engine.Config {
	pref, _ := c.powerPreference()
	bg, _ := ParseColor(c.ClearColor)
	return engine.Config{
		Backends:  slices.Clone(c.Backends),
		MaxFrames: c.MaxFrames,
		Backend: backend.Config{
			RequestDevice:   c.GPU.RequestDevice,
			PowerPreference: pref,
			ClearColor:      bg,
		},
	}
}

// LogLevel returns the configured log level. c must be valid.
func (c *Config) LogLevel() slog.Level {
	l, _ := c.level()
	return l
}

func (c *Config) powerPreference() (gputypes.PowerPreference, error) {
	var pref gputypes.PowerPreference
	switch c.GPU.PowerPreference {
	case PowerDefault:
		return pref, nil
	case PowerLowPower:
		return gputypes.PowerPreferenceLowPower, nil
	case PowerHighPerformance:
		return gputypes.PowerPreferenceHighPerformance, nil
	}
	return pref, fmt.Errorf("%w: gpu.power_preference %q", ErrInvalid, c.GPU.PowerPreference)
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return l, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
