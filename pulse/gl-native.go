//go:build !headless

package pulse

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type nativeGL struct{}

// LoadGL resolves the OpenGL function pointers for the context that is
// current on the calling thread.
func LoadGL() (GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoader, err)
	}

	return nativeGL{}, nil
}

func (nativeGL) GetString(name uint32) string {
	ptr := gl.GetString(name)
	if ptr == nil {
		return ""
	}

	return gl.GoStr(ptr)
}

func (nativeGL) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (nativeGL) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (nativeGL) BufferData(target uint32, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}

	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (nativeGL) GetBufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}

	gl.GetBufferSubData(target, offset, len(data), unsafe.Pointer(&data[0]))
}

func (nativeGL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (nativeGL) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (nativeGL) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (nativeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (nativeGL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (nativeGL) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (nativeGL) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (nativeGL) ShaderSource(shader uint32, source string) {
	sources, free := gl.Strs(source + "\x00")
	defer free()

	gl.ShaderSource(shader, 1, sources, nil)
}

func (nativeGL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (nativeGL) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (nativeGL) ShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}

	log := make([]byte, length)
	gl.GetShaderInfoLog(shader, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (nativeGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (nativeGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (nativeGL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (nativeGL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (nativeGL) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (nativeGL) ProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}

	log := make([]byte, length)
	gl.GetProgramInfoLog(program, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (nativeGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (nativeGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (nativeGL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (nativeGL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (nativeGL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (nativeGL) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}
