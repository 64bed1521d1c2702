package pulse

import (
	"fmt"
	"log/slog"
)

// BufferUsage is the hint passed to glBufferData about how often the
// contents of a buffer change.
type BufferUsage uint32

const (
	UsageStreamDraw  BufferUsage = 0x88E0
	UsageStaticDraw  BufferUsage = 0x88E4
	UsageDynamicDraw BufferUsage = 0x88E8
)

// Buffer is a GPU side array buffer.
type Buffer struct {
	ctx   *Context
	id    uint32
	size  int
	label string
}

// NewVertexBuffer allocates an array buffer, binds it and uploads values to it.
// The buffer stays bound, so a following VertexArray.Layout call picks it up.
func NewVertexBuffer[T any](ctx *Context, label string, values []T, usage BufferUsage) (*Buffer, error) {
	data := SliceBytes(values)
	if len(data) == 0 {
		return nil, fmt.Errorf("buffer %q: no data to upload", label)
	}

	buf := &Buffer{
		ctx:   ctx,
		id:    ctx.GenBuffer(),
		size:  len(data),
		label: label,
	}

	ctx.BindBuffer(glArrayBuffer, buf.id)
	ctx.BufferData(glArrayBuffer, data, uint32(usage))

	slog.Debug("Uploaded vertex buffer",
		slog.String("label", label),
		slog.Int("bytes", len(data)),
	)

	return buf, nil
}

func (b *Buffer) ID() uint32 {
	return b.id
}

// Size returns the size of the buffer in bytes.
func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) Bind() {
	b.ctx.BindBuffer(glArrayBuffer, b.id)
}

// Contents reads the buffer back from the GPU. Leaves the buffer bound.
func (b *Buffer) Contents() []byte {
	data := make([]byte, b.size)

	b.Bind()
	b.ctx.GetBufferSubData(glArrayBuffer, 0, data)

	return data
}

func (b *Buffer) Release() {
	if b == nil || b.id == 0 {
		return
	}

	b.ctx.DeleteBuffer(b.id)
	b.id = 0
}
