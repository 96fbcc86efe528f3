package headless

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gfx/window"
)

func testDescriptor() window.Descriptor {
	return window.Descriptor{
		Title:  "test",
		X:      window.Centered,
		Y:      window.Centered,
		Width:  1024,
		Height: 768,
		Flags:  window.DefaultFlags | window.Vulkan,
	}
}

func TestCreateCentersWindow(t *testing.T) {
	s := New()
	w, err := s.Create(testDescriptor())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := window.Rect{X: 448, Y: 156, Width: 1024, Height: 768}
	if got := w.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if w.ID() == "" {
		t.Error("ID() should not be empty")
	}
	if s.Created() != 1 || s.Live() != 1 {
		t.Errorf("Created() = %d, Live() = %d, want 1, 1", s.Created(), s.Live())
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	s := New()
	a, _ := s.Create(testDescriptor())
	b, _ := s.Create(testDescriptor())
	if a.ID() == b.ID() {
		t.Errorf("window IDs should differ, both %q", a.ID())
	}
}

func TestCreateInvalidSize(t *testing.T) {
	s := New()
	d := testDescriptor()
	d.Width = 0
	if _, err := s.Create(d); !errors.Is(err, window.ErrInvalidSize) {
		t.Errorf("Create() error = %v, want ErrInvalidSize", err)
	}
}

func TestFailNullHandle(t *testing.T) {
	s := New()
	s.Fail(nil)

	w, err := s.Create(testDescriptor())
	if w != nil || err != nil {
		t.Fatalf("Create() = (%v, %v), want (nil, nil)", w, err)
	}

	s.Recover()
	if w, err := s.Create(testDescriptor()); w == nil || err != nil {
		t.Fatalf("Create() after Recover = (%v, %v)", w, err)
	}
}

func TestFailWithError(t *testing.T) {
	s := New()
	boom := errors.New("no display")
	s.Fail(boom)

	if _, err := s.Create(testDescriptor()); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want %v", err, boom)
	}
	if s.Created() != 0 {
		t.Errorf("Created() = %d, want 0", s.Created())
	}
}

func TestDestroyTwice(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := w.Destroy(); !errors.Is(err, window.ErrDestroyed) {
		t.Errorf("second Destroy() error = %v, want ErrDestroyed", err)
	}
	if s.Destroyed() != 1 || s.Live() != 0 {
		t.Errorf("Destroyed() = %d, Live() = %d, want 1, 0", s.Destroyed(), s.Live())
	}
}

func TestCloseAfterPolls(t *testing.T) {
	s := New(WithCloseAfter(2))
	w, _ := s.Create(testDescriptor())

	s.PollEvents()
	if w.ShouldClose() {
		t.Fatal("ShouldClose() = true after one poll")
	}
	s.PollEvents()
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() = false after two polls")
	}
}

func TestRequestClose(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())
	hw := w.(*Window)
	hw.RequestClose()
	if !w.ShouldClose() {
		t.Error("ShouldClose() = false after RequestClose")
	}
}

func TestSystemClose(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !w.(*Window).Destroyed() {
		t.Error("Close() should destroy live windows")
	}
	if _, err := s.Create(testDescriptor()); !errors.Is(err, window.ErrSystemClosed) {
		t.Errorf("Create() after Close error = %v, want ErrSystemClosed", err)
	}
}

func TestResize(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())
	hw := w.(*Window)
	hw.Resize(800, 600)
	if r := w.Rect(); r.Width != 800 || r.Height != 600 {
		t.Errorf("Rect() = %v, want 800x600", r)
	}

	d := testDescriptor()
	d.Flags = window.Vulkan
	fixed, _ := s.Create(d)
	fixed.(*Window).Resize(800, 600)
	if r := fixed.Rect(); r.Width != 1024 {
		t.Errorf("non-resizable window resized to %v", r)
	}
}

func TestPresent(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())
	hw := w.(*Window)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	if err := hw.Present(img); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	// The window keeps its own copy.
	img.Set(1, 1, color.RGBA{})
	if got := hw.Frame().RGBAAt(1, 1); got.R != 255 {
		t.Errorf("Frame() pixel = %v, want red", got)
	}
	if hw.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", hw.Presents())
	}

	_ = hw.Destroy()
	if err := hw.Present(img); !errors.Is(err, window.ErrDestroyed) {
		t.Errorf("Present() after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestSetTitle(t *testing.T) {
	s := New()
	w, _ := s.Create(testDescriptor())
	w.SetTitle("renamed\n")
	if got := w.Title(); got != "renamed" {
		t.Errorf("Title() = %q, want %q", got, "renamed")
	}
}

func TestSetTitleUnchangedSkipped(t *testing.T) {
	s := New()
	ww, err := s.Create(testDescriptor())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	w := ww.(*Window)

	w.SetTitle("test")
	if w.Renames() != 0 {
		t.Errorf("Renames() = %d after setting the same title, want 0", w.Renames())
	}
	w.SetTitle("other")
	w.SetTitle("other\n")
	if w.Renames() != 1 {
		t.Errorf("Renames() = %d, want 1", w.Renames())
	}
}
