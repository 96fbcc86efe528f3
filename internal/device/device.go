// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device acquires and releases the GPU device owned by a graphics
// backend's state.
//
// A Device is either opened by the backend (instance, adapter, device and
// queue created through a wgpu HAL backend) or adopted from a host
// application through gpucontext. Adopted devices are never destroyed here.
package device

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfx"
)

// Options configures device acquisition.
type Options struct {
	// Label names the device in logs.
	Label string

	// PowerPreference selects between discrete and integrated adapters.
	PowerPreference gputypes.PowerPreference
}

// Info describes the adapter a device was opened on.
type Info struct {
	Name       string
	DeviceType gputypes.DeviceType
	Backend    gputypes.Backend
}

func (i Info) String() string {
	return fmt.Sprintf("%s (%v, %v)", i.Name, i.DeviceType, i.Backend)
}

// Device is a GPU device and queue owned by one backend state.
type Device struct {
	mu sync.Mutex

	label    string
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	info     Info
	format   gputypes.TextureFormat

	// provider is set for adopted devices; we don't own them.
	provider gpucontext.DeviceProvider

	lost   atomic.Bool
	closed bool
}

var _ gpucontext.DeviceProvider = (*Device)(nil)

// Open creates a device on the HAL backend registered for api.
// HAL backends register themselves on import, e.g.
//
//	import _ "github.com/gogpu/wgpu/hal/vulkan"
func Open(api gputypes.Backend, opts Options) (*Device, error) {
	b, ok := hal.GetBackend(api)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, api)
	}
	return OpenWith(b, api, opts)
}

// OpenWith creates a device on the given HAL backend. Everything created
// before a failing step is destroyed before returning.
func OpenWith(b hal.Backend, api gputypes.Backend, opts Options) (*Device, error) {
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrOpenFailed, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	kinds := make([]gputypes.DeviceType, len(adapters))
	for n := range adapters {
		kinds[n] = adapters[n].Info.DeviceType
	}
	selected := &adapters[pickAdapter(kinds, opts.PowerPreference)]

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: open device: %w", ErrOpenFailed, err)
	}

	d := &Device{
		label:    opts.Label,
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		format:   gputypes.TextureFormatBGRA8Unorm,
		info: Info{
			Name:       selected.Info.Name,
			DeviceType: selected.Info.DeviceType,
			Backend:    api,
		},
	}
	gfx.Logger().Info("device: GPU opened", "label", opts.Label, "adapter", d.info.String())
	return d, nil
}

// pickAdapter returns the index of the preferred adapter kind. High
// performance prefers discrete GPUs, low power prefers integrated ones.
// Falls back to the first adapter.
func pickAdapter(kinds []gputypes.DeviceType, pref gputypes.PowerPreference) int {
	order := []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}
	if pref == gputypes.PowerPreferenceLowPower {
		order[0], order[1] = order[1], order[0]
	}
	for _, want := range order {
		for n, k := range kinds {
			if k == want {
				return n
			}
		}
	}
	return 0
}

// Adopt wraps a device shared by the host application. The provider must
// expose its HAL objects through HalDevice and HalQueue.
func Adopt(p gpucontext.DeviceProvider, label string) (*Device, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNotShareable)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNotShareable)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNotShareable)
	}

	name := p.AdapterInfo().Name
	if name == "" {
		name = "shared"
	}
	gfx.Logger().Info("device: adopted host GPU device", "label", label, "adapter", name)
	return &Device{
		label:    label,
		device:   device,
		queue:    queue,
		format:   p.SurfaceFormat(),
		provider: p,
		info:     Info{Name: name},
	}, nil
}

// Shared reports whether the device belongs to the host application.
func (d *Device) Shared() bool { return d.provider != nil }

// Info returns the adapter description.
func (d *Device) Info() Info { return d.info }

// HalDevice returns the hal.Device, for consumers that share this device.
func (d *Device) HalDevice() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.device
}

// HalQueue returns the hal.Queue, for consumers that share this device.
func (d *Device) HalQueue() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue
}

// Device returns the host's gpucontext device, or nil for owned devices.
func (d *Device) Device() gpucontext.Device {
	if d.provider == nil {
		return nil
	}
	return d.provider.Device()
}

// Queue returns the host's gpucontext queue, or nil for owned devices.
func (d *Device) Queue() gpucontext.Queue {
	if d.provider == nil {
		return nil
	}
	return d.provider.Queue()
}

// Adapter returns the host's gpucontext adapter, or nil for owned devices.
func (d *Device) Adapter() gpucontext.Adapter {
	if d.provider == nil {
		return nil
	}
	return d.provider.Adapter()
}

// AdapterInfo describes the adapter. Adopted devices report the host's
// adapter.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	if d.provider != nil {
		return d.provider.AdapterInfo()
	}
	return gpucontext.AdapterInfo{Name: d.info.Name, Type: adapterType(d.info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterTypeUnknown
}

// SurfaceFormat returns the format window surfaces should use.
func (d *Device) SurfaceFormat() gputypes.TextureFormat { return d.format }

// MarkLost records that the device was lost. Host integrations call it
// from their device-lost callbacks.
func (d *Device) MarkLost() { d.lost.Store(true) }

// Err returns ErrDeviceLost after MarkLost and ErrClosed after Close.
func (d *Device) Err() error {
	if d.lost.Load() {
		return ErrDeviceLost
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	return nil
}

// Close destroys an owned device and its instance. Shared devices are
// only forgotten. Close is idempotent.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true

	if d.provider == nil {
		if d.device != nil {
			d.device.Destroy()
		}
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
	d.device = nil
	d.queue = nil
	d.instance = nil
	gfx.Logger().Debug("device: closed", "label", d.label, "shared", d.provider != nil)
}
