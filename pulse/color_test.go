package pulse_test

import (
	"testing"

	"github.com/oliverbestmann/learngl/glm"
	"github.com/oliverbestmann/learngl/pulse"
	"github.com/stretchr/testify/assert"
)

func TestColorZeroValueIsWhite(t *testing.T) {
	var color pulse.Color
	assert.Equal(t, glm.Vec4f{1, 1, 1, 1}, color.ToVec())
}

func TestColorOf(t *testing.T) {
	color := pulse.ColorOf(glm.Vec4f{0.2, 0.3, 0.3, 1})
	assert.Equal(t, pulse.ColorLinearRGBA(0.2, 0.3, 0.3, 1), color)

	r, g, b, a := color.Components()
	assert.InDelta(t, 0.2, r, 1e-6)
	assert.InDelta(t, 0.3, g, 1e-6)
	assert.InDelta(t, 0.3, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}
