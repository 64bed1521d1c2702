// Package pulsetest provides an in-memory implementation of pulse.GL that
// records every call, so code using OpenGL can be tested without a driver.
package pulsetest

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/learngl/pulse"
)

var _ pulse.GL = (*GL)(nil)

const (
	vertexShader   uint32 = 0x8B31
	fragmentShader uint32 = 0x8B30
)

// CompileFunc decides if a shader compiles. It returns the info log on failure.
type CompileFunc func(stage uint32, source string) (ok bool, log string)

// DefaultCompile accepts every source that defines a main function.
func DefaultCompile(stage uint32, source string) (bool, string) {
	if !strings.Contains(source, "void main()") {
		return false, "0:1(1): error: syntax error, unexpected end of file"
	}

	return true, ""
}

type Attribute struct {
	Components int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr

	// array buffer bound when the attribute was described
	Buffer uint32

	Enabled bool
}

type VertexArray struct {
	Attributes map[uint32]*Attribute
}

type Shader struct {
	Stage    uint32
	Source   string
	Compiled bool
	Log      string
}

type Program struct {
	Shaders []uint32
	Linked  bool
	Log     string
}

type Draw struct {
	Mode         uint32
	First, Count int32
	Program      uint32
	VertexArray  uint32
}

// GL is a fake pulse.GL. The zero value is not usable, use NewGL.
type GL struct {
	// Compile is consulted by CompileShader.
	Compile CompileFunc

	// Calls contains the name of every GL function called, in order.
	Calls []string

	Strings map[uint32]string

	Buffers      map[uint32][]byte
	BufferUsage  map[uint32]uint32
	VertexArrays map[uint32]*VertexArray
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	BoundBuffer      uint32
	BoundVertexArray uint32
	CurrentProgram   uint32

	ViewportSize [4]int32
	ClearRGBA    [4]float32

	Draws []Draw

	// objects that were deleted, in order
	Deleted []string

	nextID uint32
}

func NewGL() *GL {
	return &GL{
		Compile: DefaultCompile,
		Strings: map[uint32]string{
			0x1F00: "pulsetest",
			0x1F01: "fake renderer",
			0x1F02: "3.3.0 Core Profile",
			0x8B8C: "3.30",
		},
		Buffers:      map[uint32][]byte{},
		BufferUsage:  map[uint32]uint32{},
		VertexArrays: map[uint32]*VertexArray{},
		Shaders:      map[uint32]*Shader{},
		Programs:     map[uint32]*Program{},
	}
}

// Live returns the number of GL objects that were created but not yet deleted.
func (g *GL) Live() int {
	return len(g.Buffers) + len(g.VertexArrays) + len(g.Shaders) + len(g.Programs)
}

// CallIndex returns the position of the n-th call (starting at zero)
// to the function with the given name, or -1.
func (g *GL) CallIndex(name string, n int) int {
	for idx, call := range g.Calls {
		if call != name {
			continue
		}

		if n == 0 {
			return idx
		}

		n--
	}

	return -1
}

// Count returns how often the named function was called.
func (g *GL) Count(name string) int {
	var count int
	for _, call := range g.Calls {
		if call == name {
			count++
		}
	}

	return count
}

func (g *GL) record(name string) {
	g.Calls = append(g.Calls, name)
}

func (g *GL) id() uint32 {
	g.nextID++
	return g.nextID
}

func (g *GL) GetString(name uint32) string {
	g.record("GetString")
	return g.Strings[name]
}

func (g *GL) GenBuffer() uint32 {
	g.record("GenBuffer")

	id := g.id()
	g.Buffers[id] = nil
	return id
}

func (g *GL) BindBuffer(target, buffer uint32) {
	g.record("BindBuffer")
	mustExistIn("buffer", buffer, g.Buffers)
	g.BoundBuffer = buffer
}

func (g *GL) BufferData(target uint32, data []byte, usage uint32) {
	g.record("BufferData")
	g.Buffers[g.BoundBuffer] = append([]byte(nil), data...)
	g.BufferUsage[g.BoundBuffer] = usage
}

func (g *GL) GetBufferSubData(target uint32, offset int, data []byte) {
	g.record("GetBufferSubData")
	copy(data, g.Buffers[g.BoundBuffer][offset:])
}

func (g *GL) DeleteBuffer(buffer uint32) {
	g.record("DeleteBuffer")
	mustExistIn("buffer", buffer, g.Buffers)
	delete(g.Buffers, buffer)
	g.Deleted = append(g.Deleted, fmt.Sprintf("buffer %d", buffer))
}

func (g *GL) GenVertexArray() uint32 {
	g.record("GenVertexArray")

	id := g.id()
	g.VertexArrays[id] = &VertexArray{Attributes: map[uint32]*Attribute{}}
	return id
}

func (g *GL) BindVertexArray(array uint32) {
	g.record("BindVertexArray")
	mustExistIn("vertex array", array, g.VertexArrays)
	g.BoundVertexArray = array
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.record("VertexAttribPointer")

	va := g.VertexArrays[g.BoundVertexArray]
	if va == nil {
		panic("VertexAttribPointer without a bound vertex array")
	}

	va.Attributes[index] = &Attribute{
		Components: size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     g.BoundBuffer,
	}
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray")

	va := g.VertexArrays[g.BoundVertexArray]
	if va == nil || va.Attributes[index] == nil {
		panic(fmt.Sprintf("enable undescribed attribute %d", index))
	}

	va.Attributes[index].Enabled = true
}

func (g *GL) DeleteVertexArray(array uint32) {
	g.record("DeleteVertexArray")
	mustExistIn("vertex array", array, g.VertexArrays)
	delete(g.VertexArrays, array)
	g.Deleted = append(g.Deleted, fmt.Sprintf("vertex array %d", array))
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	g.record("CreateShader")

	id := g.id()
	g.Shaders[id] = &Shader{Stage: xtype}
	return id
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource")
	g.Shaders[shader].Source = source
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader")

	sh := g.Shaders[shader]
	sh.Compiled, sh.Log = g.Compile(sh.Stage, sh.Source)
}

func (g *GL) ShaderCompileStatus(shader uint32) bool {
	g.record("ShaderCompileStatus")
	return g.Shaders[shader].Compiled
}

func (g *GL) ShaderInfoLog(shader uint32) string {
	g.record("ShaderInfoLog")
	return g.Shaders[shader].Log
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader")
	mustExistIn("shader", shader, g.Shaders)
	delete(g.Shaders, shader)
	g.Deleted = append(g.Deleted, fmt.Sprintf("shader %d", shader))
}

func (g *GL) CreateProgram() uint32 {
	g.record("CreateProgram")

	id := g.id()
	g.Programs[id] = &Program{}
	return id
}

func (g *GL) AttachShader(program, shader uint32) {
	g.record("AttachShader")
	mustExistIn("shader", shader, g.Shaders)
	g.Programs[program].Shaders = append(g.Programs[program].Shaders, shader)
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram")

	prog := g.Programs[program]
	prog.Linked, prog.Log = true, ""

	stages := map[uint32]bool{}
	for _, id := range prog.Shaders {
		shader := g.Shaders[id]
		if !shader.Compiled {
			prog.Linked = false
			prog.Log = "error: linking with uncompiled/unspecialized shader"
			return
		}

		stages[shader.Stage] = true
	}

	if !stages[vertexShader] || !stages[fragmentShader] {
		prog.Linked = false
		prog.Log = "error: program lacks a vertex or fragment shader"
	}
}

func (g *GL) ProgramLinkStatus(program uint32) bool {
	g.record("ProgramLinkStatus")
	return g.Programs[program].Linked
}

func (g *GL) ProgramInfoLog(program uint32) string {
	g.record("ProgramInfoLog")
	return g.Programs[program].Log
}

func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram")
	mustExistIn("program", program, g.Programs)
	g.CurrentProgram = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram")
	mustExistIn("program", program, g.Programs)
	delete(g.Programs, program)
	g.Deleted = append(g.Deleted, fmt.Sprintf("program %d", program))
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.record("Viewport")
	g.ViewportSize = [4]int32{x, y, width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.record("ClearColor")
	g.ClearRGBA = [4]float32{r, gr, b, a}
}

func (g *GL) Clear(mask uint32) {
	g.record("Clear")
}

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	g.record("DrawArrays")

	g.Draws = append(g.Draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     g.CurrentProgram,
		VertexArray: g.BoundVertexArray,
	})
}

// id zero is valid for binding and means "nothing"
func mustExistIn[V any](kind string, id uint32, objects map[uint32]V) {
	if id == 0 {
		return
	}

	if _, ok := objects[id]; !ok {
		panic(fmt.Sprintf("unknown %s %d", kind, id))
	}
}

// CompileFails returns a CompileFunc that rejects every source
// containing marker and accepts all others.
func CompileFails(marker, log string) CompileFunc {
	return func(stage uint32, source string) (bool, string) {
		if strings.Contains(source, marker) {
			return false, log
		}

		return DefaultCompile(stage, source)
	}
}
