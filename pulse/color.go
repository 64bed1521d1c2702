package pulse

import (
	"github.com/oliverbestmann/learngl/glm"
)

// Color is a straight rgba color. The default framebuffer is not sRGB
// encoded, so the components are written to it unchanged.
// The zero value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorOf converts the components of the given vector to a Color.
func ColorOf(color glm.Vec4f) Color {
	return ColorLinearRGBA(color.XYZW())
}

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1}
}

// Components returns the color components as passed to glClearColor.
func (c Color) Components() (r, g, b, a float32) {
	return c.ToVec().XYZW()
}
