package metal

import (
	"errors"
	"testing"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/internal/device"
	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/headless"
)

func TestInit(t *testing.T) {
	ws := headless.New()
	inst := gfx.NewInstance(ws)
	b := New(backend.Config{})

	if err := b.Init(inst); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if inst.API() != gfx.APIMetal {
		t.Errorf("API() = %v, want Metal", inst.API())
	}
	st, ok := inst.State().(*State)
	if !ok {
		t.Fatalf("State() = %T, want *metal.State", inst.State())
	}
	if st.Device() != nil || st.Frames() != 0 {
		t.Error("state is not zero-initialized")
	}

	w := inst.Window().(*headless.Window)
	if w.Flags() != window.DefaultFlags|window.Metal {
		t.Errorf("window flags = %v", w.Flags())
	}
	r := w.Rect()
	if r.Width != gfx.InitialWindowWidth || r.Height != gfx.InitialWindowHeight {
		t.Errorf("window = %v", r)
	}

	b.Shutdown(inst)
	b.Shutdown(inst)
	if inst.Active() || ws.Live() != 0 {
		t.Error("Shutdown did not release the backend")
	}
}

func TestInitDeviceUnavailable(t *testing.T) {
	ws := headless.New()
	inst := gfx.NewInstance(ws)
	b := New(backend.Config{RequestDevice: true})

	err := b.Init(inst)
	if !errors.Is(err, backend.ErrAttach) || !errors.Is(err, device.ErrBackendUnavailable) {
		t.Fatalf("Init() error = %v, want ErrAttach wrapping ErrBackendUnavailable", err)
	}
	if inst.Active() || inst.API() != gfx.APINone {
		t.Error("failed Init bound the backend")
	}
	if ws.Created() != 1 || ws.Live() != 0 {
		t.Errorf("created=%d live=%d, want the window destroyed", ws.Created(), ws.Live())
	}
}
