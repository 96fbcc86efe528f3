package window

import (
	"errors"
	"testing"
)

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "none"},
		{DefaultFlags, "resizable|highdpi"},
		{DefaultFlags | Metal, "resizable|highdpi|metal"},
		{Vulkan, "vulkan"},
		{OpenGL | Vulkan, "opengl|vulkan"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestFlagsHas(t *testing.T) {
	f := DefaultFlags | Metal
	if !f.Has(Metal) || !f.Has(Resizable|HighDPI) {
		t.Errorf("%v should contain metal and default flags", f)
	}
	if f.Has(Vulkan) {
		t.Errorf("%v should not contain vulkan", f)
	}
}

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptor
		wantErr bool
	}{
		{"valid", Descriptor{Width: 1024, Height: 768}, false},
		{"zero width", Descriptor{Width: 0, Height: 768}, true},
		{"negative height", Descriptor{Width: 10, Height: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Validate() error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	// "e" + combining acute accent composes to a single rune.
	got := NormalizeTitle("Cafe\u0301\tDemo\n")
	if want := "Caf\u00e9Demo"; got != want {
		t.Errorf("NormalizeTitle() = %q, want %q", got, want)
	}
}

func TestCenter(t *testing.T) {
	d := Descriptor{X: Centered, Y: 40, Width: 1024, Height: 768}
	x, y := Center(d, 1920, 1080)
	if x != 448 || y != 40 {
		t.Errorf("Center() = (%d, %d), want (448, 40)", x, y)
	}
}

func TestRectString(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 640, Height: 480}
	if got := r.String(); got != "640x480+10+20" {
		t.Errorf("Rect.String() = %q", got)
	}
}
