package pulse

import "errors"

// ErrLoader is returned if the OpenGL function pointers could not be
// resolved for the current context.
var ErrLoader = errors.New("load opengl functions")

// OpenGL enum values used by this package. They match the values in the
// Khronos registry, so they can be passed to the native implementation as is.
const (
	glArrayBuffer    uint32 = 0x8892
	glColorBufferBit uint32 = 0x4000
	glTriangles      uint32 = 0x0004

	glVendor                 uint32 = 0x1F00
	glRenderer               uint32 = 0x1F01
	glVersion                uint32 = 0x1F02
	glShadingLanguageVersion uint32 = 0x8B8C
)

// Triangles is the primitive mode used by Context.DrawTriangles.
const Triangles = glTriangles

// GL is the subset of the OpenGL 3.3 core profile that this package uses.
// All calls must happen on the thread that owns the current context.
type GL interface {
	GetString(name uint32) string

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	GetBufferSubData(target uint32, offset int, data []byte)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
}
