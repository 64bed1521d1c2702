package pulse_test

import (
	"testing"

	"github.com/oliverbestmann/learngl/glm"
	"github.com/oliverbestmann/learngl/pulse"
	"github.com/oliverbestmann/learngl/pulse/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*pulse.Context, *pulsetest.GL) {
	t.Helper()

	fake := pulsetest.NewGL()
	return pulse.New(fake), fake
}

func TestNewReadsDriverStrings(t *testing.T) {
	ctx, _ := newContext(t)

	assert.Equal(t, "3.3.0 Core Profile", ctx.Version)
	assert.Equal(t, "fake renderer", ctx.Renderer)
	assert.Equal(t, "3.30", ctx.GLSL)
}

func TestSetViewport(t *testing.T) {
	ctx, fake := newContext(t)

	ctx.SetViewport(1024, 768)
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, fake.ViewportSize)
}

func TestVertexBufferContents(t *testing.T) {
	ctx, fake := newContext(t)

	vertices := []glm.Vec3f{
		{-0.5, -0.5, 0},
		{0.5, 0.5, 0},
		{0, 0.5, 0},
	}

	buf, err := pulse.NewVertexBuffer(ctx, "Triangle", vertices, pulse.UsageStaticDraw)
	require.NoError(t, err)
	defer buf.Release()

	assert.Equal(t, 36, buf.Size())
	assert.Equal(t, uint32(pulse.UsageStaticDraw), fake.BufferUsage[buf.ID()])

	flat := []float32{-0.5, -0.5, 0, 0.5, 0.5, 0, 0, 0.5, 0}
	assert.Equal(t, pulse.SliceBytes(flat), buf.Contents())
}

func TestVertexBufferRejectsEmptyData(t *testing.T) {
	ctx, fake := newContext(t)

	_, err := pulse.NewVertexBuffer[float32](ctx, "Empty", nil, pulse.UsageStaticDraw)
	require.Error(t, err)
	assert.Zero(t, fake.Live())
}

func TestReleaseIsIdempotent(t *testing.T) {
	ctx, fake := newContext(t)

	buf, err := pulse.NewVertexBuffer(ctx, "Data", []float32{1, 2, 3}, pulse.UsageDynamicDraw)
	require.NoError(t, err)

	va := pulse.NewVertexArray(ctx)

	buf.Release()
	buf.Release()
	va.Release()
	va.Release()

	assert.Zero(t, fake.Live())
	assert.Equal(t, 1, fake.Count("DeleteBuffer"))
	assert.Equal(t, 1, fake.Count("DeleteVertexArray"))

	// releasing nil values is fine too
	var program *pulse.Program
	program.Release()
}

func TestVertexArrayLayout(t *testing.T) {
	ctx, fake := newContext(t)

	va := pulse.NewVertexArray(ctx)
	defer va.Release()

	buf, err := pulse.NewVertexBuffer(ctx, "Triangle", make([]glm.Vec3f, 3), pulse.UsageStaticDraw)
	require.NoError(t, err)
	defer buf.Release()

	va.Layout(pulse.VertexAttribute{
		Location:   0,
		Components: 3,
		Type:       pulse.AttributeFloat,
		Stride:     12,
	})

	attr := fake.VertexArrays[va.ID()].Attributes[0]
	require.NotNil(t, attr)

	assert.Equal(t, int32(3), attr.Components)
	assert.Equal(t, uint32(pulse.AttributeFloat), attr.Type)
	assert.False(t, attr.Normalized)
	assert.Equal(t, int32(12), attr.Stride)
	assert.Zero(t, attr.Offset)
	assert.Equal(t, buf.ID(), attr.Buffer)
	assert.True(t, attr.Enabled)
}

func TestClear(t *testing.T) {
	ctx, fake := newContext(t)

	pulse.NewClear(ctx).Clear(pulse.ColorLinearRGBA(0.2, 0.3, 0.3, 1))

	assert.InDeltaSlice(t, []float32{0.2, 0.3, 0.3, 1}, fake.ClearRGBA[:], 1e-6)
	assert.Equal(t, 1, fake.Count("Clear"))
	assert.Less(t, fake.CallIndex("ClearColor", 0), fake.CallIndex("Clear", 0))
}

func TestDrawTriangles(t *testing.T) {
	ctx, fake := newContext(t)

	ctx.DrawTriangles(0, 3)

	require.Len(t, fake.Draws, 1)
	assert.Equal(t, pulse.Triangles, fake.Draws[0].Mode)
	assert.Equal(t, int32(3), fake.Draws[0].Count)
}

type countingReleaser struct{ count int }

func (c *countingReleaser) Release() { c.count++ }

func TestReleaseGuard(t *testing.T) {
	released := &countingReleaser{}
	guard := pulse.NewReleaseGuard(released)
	guard.Release()
	guard.Release()
	assert.Equal(t, 1, released.count)

	kept := &countingReleaser{}
	guard = pulse.NewReleaseGuard(kept)
	guard.Keep()
	guard.Release()
	assert.Zero(t, kept.count)
}

func TestSliceBytes(t *testing.T) {
	assert.Nil(t, pulse.SliceBytes[float32](nil))
	assert.Len(t, pulse.SliceBytes([]glm.Vec3f{{1, 2, 3}, {4, 5, 6}}), 24)
}
