package gfx

import (
	"errors"
	"testing"
)

func TestAPIString(t *testing.T) {
	tests := []struct {
		api  API
		name string
		key  string
	}{
		{APINone, "None", "none"},
		{APISoftware, "Software", "software"},
		{APIOpenGL, "OpenGL", "opengl"},
		{APIVulkan, "Vulkan", "vulkan"},
		{APIDirect3D, "Direct3D", "direct3d"},
		{APIMetal, "Metal", "metal"},
		{API(42), "API(42)", "api(42)"},
	}
	for _, tt := range tests {
		if got := tt.api.String(); got != tt.name {
			t.Errorf("API(%d).String() = %q, want %q", tt.api, got, tt.name)
		}
		if got := tt.api.Key(); got != tt.key {
			t.Errorf("API(%d).Key() = %q, want %q", tt.api, got, tt.key)
		}
	}
}

func TestAPIValid(t *testing.T) {
	if APINone.Valid() {
		t.Error("APINone should not be valid")
	}
	for _, a := range APIs {
		if !a.Valid() {
			t.Errorf("%v should be valid", a)
		}
	}
	if API(99).Valid() {
		t.Error("API(99) should not be valid")
	}
}

func TestParseAPI(t *testing.T) {
	for _, a := range APIs {
		got, err := ParseAPI(a.String())
		if err != nil {
			t.Fatalf("ParseAPI(%q) error = %v", a.String(), err)
		}
		if got != a {
			t.Errorf("ParseAPI(%q) = %v, want %v", a.String(), got, a)
		}
	}

	if _, err := ParseAPI("none"); !errors.Is(err, ErrUnknownAPI) {
		t.Errorf("ParseAPI(none) error = %v, want ErrUnknownAPI", err)
	}
	if _, err := ParseAPI("glide"); !errors.Is(err, ErrUnknownAPI) {
		t.Errorf("ParseAPI(glide) error = %v, want ErrUnknownAPI", err)
	}
}
