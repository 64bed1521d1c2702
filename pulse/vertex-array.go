package pulse

// AttributeType is the component type of a vertex attribute.
type AttributeType uint32

const (
	AttributeFloat AttributeType = 0x1406
)

// VertexAttribute describes how the bytes of the bound array buffer are
// mapped onto a shader input.
type VertexAttribute struct {
	// layout (location = N) in the vertex shader
	Location uint32

	// number of components, e.g. 3 for a vec3
	Components int32
	Type       AttributeType
	Normalized bool

	// distance in bytes between two consecutive vertices
	Stride int32

	// offset of the first component within the buffer
	Offset uintptr
}

// VertexArray records the attribute layout. The core profile does not
// provide a default vertex array object, one must be bound before
// describing any attribute.
type VertexArray struct {
	ctx *Context
	id  uint32
}

// NewVertexArray creates a vertex array and binds it.
func NewVertexArray(ctx *Context) *VertexArray {
	va := &VertexArray{ctx: ctx, id: ctx.GenVertexArray()}
	va.Bind()
	return va
}

func (va *VertexArray) ID() uint32 {
	return va.id
}

func (va *VertexArray) Bind() {
	va.ctx.BindVertexArray(va.id)
}

// Layout binds the vertex array, then describes and enables each attribute.
// The attributes source their data from the currently bound array buffer.
func (va *VertexArray) Layout(attributes ...VertexAttribute) {
	va.Bind()

	for _, attr := range attributes {
		va.ctx.VertexAttribPointer(
			attr.Location,
			attr.Components,
			uint32(attr.Type),
			attr.Normalized,
			attr.Stride,
			attr.Offset,
		)

		va.ctx.EnableVertexAttribArray(attr.Location)
	}
}

func (va *VertexArray) Release() {
	if va == nil || va.id == 0 {
		return
	}

	va.ctx.DeleteVertexArray(va.id)
	va.id = 0
}
