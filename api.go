package gfx

import (
	"fmt"
	"strings"
)

// API identifies a graphics API. The set is closed: every backend package
// implements exactly one of these values.
type API uint8

// Graphics APIs. APINone marks an instance with no backend bound.
const (
	APINone API = iota
	APISoftware
	APIOpenGL
	APIVulkan
	APIDirect3D
	APIMetal
)

// APIs lists every bindable API in declaration order.
var APIs = []API{APISoftware, APIOpenGL, APIVulkan, APIDirect3D, APIMetal}

var apiNames = [...]string{
	APINone:     "None",
	APISoftware: "Software",
	APIOpenGL:   "OpenGL",
	APIVulkan:   "Vulkan",
	APIDirect3D: "Direct3D",
	APIMetal:    "Metal",
}

// String returns the display name of the API, as used in window titles.
func (a API) String() string {
	if int(a) < len(apiNames) {
		return apiNames[a]
	}
	return fmt.Sprintf("API(%d)", uint8(a))
}

// Key returns the lowercase registry key of the API ("vulkan", "metal", ...).
func (a API) Key() string {
	return strings.ToLower(a.String())
}

// Valid reports whether a is one of the bindable APIs.
func (a API) Valid() bool {
	return a > APINone && a <= APIMetal
}

// ParseAPI returns the API whose key or display name matches s,
// ignoring case.
func ParseAPI(s string) (API, error) {
	for _, a := range APIs {
		if strings.EqualFold(s, a.Key()) {
			return a, nil
		}
	}
	return APINone, fmt.Errorf("%w: %q", ErrUnknownAPI, s)
}
