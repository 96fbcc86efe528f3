package opengl

import (
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/gfx/window"
)

// goGL issues commands through go-gl.
type goGL struct{}

func (goGL) Load() error { return gl.Init() }

func (goGL) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (goGL) Clear(r window.Rect, c color.RGBA) {
	gl.Viewport(0, 0, int32(r.Width), int32(r.Height))
	gl.ClearColor(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
