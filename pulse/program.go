package pulse

import (
	"errors"
	"log/slog"
)

type Program struct {
	ctx *Context
	id  uint32
}

// LinkProgram attaches all shaders to a new program object and links it.
// As with CompileShader, a link failure returns the program together
// with a *ShaderError.
func LinkProgram(ctx *Context, shaders ...*Shader) (*Program, error) {
	program := &Program{ctx: ctx, id: ctx.CreateProgram()}

	for _, shader := range shaders {
		ctx.AttachShader(program.id, shader.id)
	}

	ctx.LinkProgram(program.id)

	if !ctx.ProgramLinkStatus(program.id) {
		return program, &ShaderError{
			Stage:  "PROGRAM",
			Detail: "LINK_FAILED",
			Log:    ctx.ProgramInfoLog(program.id),
		}
	}

	return program, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

// Use installs the program as part of the current rendering state.
func (p *Program) Use() {
	p.ctx.UseProgram(p.id)
}

func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}

	p.ctx.DeleteProgram(p.id)
	p.id = 0
}

// ProgramSource is the source code of a vertex and fragment shader pair.
type ProgramSource struct {
	Vertex   string
	Fragment string
}

// Build compiles both stages and links them. The shader objects are deleted
// once the program is linked, the program keeps the compiled result.
//
// Compile and link failures are joined into the returned error. The program
// is returned regardless, so a caller may decide to continue with it.
func (src ProgramSource) Build(ctx *Context) (*Program, error) {
	vertex, errVertex := CompileShader(ctx, StageVertex, src.Vertex)
	defer vertex.Release()

	fragment, errFragment := CompileShader(ctx, StageFragment, src.Fragment)
	defer fragment.Release()

	program, errLink := LinkProgram(ctx, vertex, fragment)

	err := errors.Join(errVertex, errFragment, errLink)
	if err != nil {
		slog.Warn("Shader program is not valid", slog.String("err", err.Error()))
	}

	return program, err
}

// ShaderErrors returns all *ShaderError values in err, following
// wrapped and joined errors.
func ShaderErrors(err error) []*ShaderError {
	var result []*ShaderError

	var walk func(err error)
	walk = func(err error) {
		switch err := err.(type) {
		case nil:
			return
		case *ShaderError:
			result = append(result, err)
		case interface{ Unwrap() []error }:
			for _, err := range err.Unwrap() {
				walk(err)
			}
		case interface{ Unwrap() error }:
			walk(err.Unwrap())
		}
	}

	walk(err)

	return result
}

// OnlyShaderErrors reports whether err is made up of shader errors only.
func OnlyShaderErrors(err error) bool {
	switch err := err.(type) {
	case nil:
		return false
	case *ShaderError:
		return true
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !OnlyShaderErrors(err) {
				return false
			}
		}
		return true
	case interface{ Unwrap() error }:
		return OnlyShaderErrors(err.Unwrap())
	default:
		return false
	}
}
