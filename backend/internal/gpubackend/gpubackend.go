// Package gpubackend is the Driver shared by the backends that render
// through a wgpu HAL device: Vulkan, Metal and Direct3D.
package gpubackend

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/internal/device"
	"github.com/gogpu/gfx/window"
)

// ErrNoDevice is returned by Frame when a device was requested but is gone.
var ErrNoDevice = errors.New("gpubackend: no device")

// State is the state block of a HAL backend.
type State struct {
	api    gfx.API
	dev    *device.Device
	frames uint64
}

// API returns the API the state was allocated for.
func (s *State) API() gfx.API { return s.api }

// Device returns the GPU device, or nil when none was requested.
func (s *State) Device() *device.Device { return s.dev }

// Frames returns the number of frames run.
func (s *State) Frames() uint64 { return s.frames }

// Release closes the device. Shared devices are left to their owner.
func (s *State) Release() {
	if s.dev != nil {
		s.dev.Close()
		s.dev = nil
	}
}

// Driver implements backend.Driver for one HAL backend kind.
type Driver struct {
	api     gfx.API
	kind    gputypes.Backend
	surface window.Flags
	cfg     backend.Config
}

// New returns a driver binding api to the HAL backend kind.
func New(api gfx.API, kind gputypes.Backend, surface window.Flags, cfg backend.Config) *Driver {
	return &Driver{api: api, kind: kind, surface: surface, cfg: cfg}
}

var _ backend.Driver = (*Driver)(nil)

// API returns the graphics API.
func (d *Driver) API() gfx.API { return d.api }

// Kind returns the HAL backend kind.
func (d *Driver) Kind() gputypes.Backend { return d.kind }

// Surface returns the window flag the API needs.
func (d *Driver) Surface() window.Flags { return d.surface }

// Allocate returns a zeroed state tagged with the driver's API.
func (d *Driver) Allocate() gfx.State { return &State{api: d.api} }

// Attach acquires the GPU device: the host's when a provider is
// configured, a new one when RequestDevice is set, none otherwise.
func (d *Driver) Attach(st gfx.State, w window.Window) error {
	s := st.(*State)
	label := d.api.Key() + ":" + w.ID()

	switch {
	case d.cfg.Provider != nil:
		dev, err := device.Adopt(d.cfg.Provider, label)
		if err != nil {
			return err
		}
		s.dev = dev
	case d.cfg.RequestDevice:
		dev, err := device.Open(d.kind, device.Options{
			Label:           label,
			PowerPreference: d.cfg.PowerPreference,
		})
		if err != nil {
			return err
		}
		s.dev = dev
	}
	return nil
}

// Frame checks the device and counts the frame.
func (d *Driver) Frame(st gfx.State, _ window.Window, _ time.Duration) error {
	s := st.(*State)
	if d.wantsDevice() {
		if s.dev == nil {
			return ErrNoDevice
		}
		if err := s.dev.Err(); err != nil {
			return fmt.Errorf("%s: %w", d.api, err)
		}
	}
	s.frames++
	return nil
}

func (d *Driver) wantsDevice() bool {
	return d.cfg.Provider != nil || d.cfg.RequestDevice
}
