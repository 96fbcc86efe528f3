package vulkan

import (
	"testing"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/internal/device"
	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/headless"
)

func TestRegistered(t *testing.T) {
	b, err := backend.Get("vulkan", backend.Config{})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if b.API() != gfx.APIVulkan {
		t.Errorf("API() = %v, want Vulkan", b.API())
	}
}

func TestLifecycleWithHostDevice(t *testing.T) {
	host, err := device.OpenWith(noop.API{}, gputypes.BackendVulkan, device.Options{Label: "host"})
	if err != nil {
		t.Fatalf("OpenWith() error = %v", err)
	}
	defer host.Close()

	ws := headless.New()
	inst := gfx.NewInstance(ws)
	b := New(backend.Config{Provider: host})

	if err := b.Init(inst); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	w := inst.Window().(*headless.Window)
	if !w.Flags().Has(window.Vulkan) {
		t.Errorf("window flags = %v, want vulkan", w.Flags())
	}
	st := inst.State().(*State)
	if st.Device() == nil {
		t.Fatal("no device attached")
	}

	if err := b.Update(inst, 16*time.Millisecond); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if st.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", st.Frames())
	}

	b.Shutdown(inst)
	if inst.Active() || !w.Destroyed() {
		t.Error("Shutdown left the backend bound")
	}
	if st.Device() != nil {
		t.Error("state still holds the device")
	}
	if err := host.Err(); err != nil {
		t.Errorf("host device err = %v", err)
	}
}
