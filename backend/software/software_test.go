package software

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/window"
	"github.com/gogpu/gfx/window/headless"
)

func TestLifecycle(t *testing.T) {
	ws := headless.New()
	inst := gfx.NewInstance(ws)
	red := color.RGBA{R: 0xff, A: 0xff}
	b := New(backend.Config{ClearColor: red})

	if err := b.Init(inst); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	st := inst.State().(*State)
	if got := st.Buffer().Bounds().Size(); got != image.Pt(gfx.InitialWindowWidth, gfx.InitialWindowHeight) {
		t.Errorf("buffer size = %v", got)
	}
	w := inst.Window().(*headless.Window)
	if w.Flags() != window.DefaultFlags {
		t.Errorf("window flags = %v, want %v", w.Flags(), window.DefaultFlags)
	}

	if err := b.Update(inst, 16*time.Millisecond); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if w.Presents() != 1 {
		t.Fatalf("Presents() = %d, want 1", w.Presents())
	}
	if got := w.Frame().RGBAAt(10, 10); got != red {
		t.Errorf("pixel = %v, want %v", got, red)
	}

	b.Shutdown(inst)
	if st.Buffer() != nil {
		t.Error("Release() kept the buffer")
	}
	if ws.Live() != 0 {
		t.Errorf("Live() = %d, want 0", ws.Live())
	}
}

func TestResizeRescales(t *testing.T) {
	inst := gfx.NewInstance(headless.New())
	blue := color.RGBA{B: 0xff, A: 0xff}
	var sizes []image.Point
	b := NewWithPainter(backend.Config{ClearColor: blue}, func(dst *image.RGBA, _ time.Duration) {
		sizes = append(sizes, dst.Bounds().Size())
	})

	if err := b.Init(inst); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	w := inst.Window().(*headless.Window)
	if err := b.Update(inst, 0); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	w.Resize(200, 100)
	if err := b.Update(inst, 0); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := []image.Point{
		image.Pt(gfx.InitialWindowWidth, gfx.InitialWindowHeight),
		image.Pt(200, 100),
	}
	if len(sizes) != len(want) || sizes[0] != want[0] || sizes[1] != want[1] {
		t.Fatalf("painted sizes = %v, want %v", sizes, want)
	}
	// The attach-time clear survives scaling.
	if got := w.Frame().RGBAAt(100, 50); got.R != 0 || got.B < 0xfe {
		t.Errorf("pixel = %v, want %v", got, blue)
	}
	b.Shutdown(inst)
}

func TestUpdateBeforeInit(t *testing.T) {
	inst := gfx.NewInstance(headless.New())
	if err := New(backend.Config{}).Update(inst, 0); err == nil {
		t.Fatal("Update() before Init succeeded")
	}
}
