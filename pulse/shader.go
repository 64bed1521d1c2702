package pulse

import (
	"fmt"
	"log/slog"
)

// ShaderStage is the pipeline stage a shader is compiled for. The values
// are the GL shader type enums.
type ShaderStage uint32

const (
	StageFragment ShaderStage = 0x8B30
	StageVertex   ShaderStage = 0x8B31
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	default:
		return fmt.Sprintf("ShaderStage(0x%X)", uint32(s))
	}
}

// ShaderError reports a failed compile or link step together with the
// info log of the driver.
type ShaderError struct {
	// VERTEX, FRAGMENT or PROGRAM
	Stage string

	// COMPILATION_FAILED or LINK_FAILED
	Detail string

	Log string
}

func (e *ShaderError) Error() string {
	return "ERROR::SHADER::" + e.Stage + "::" + e.Detail + "\n" + e.Log
}

type Shader struct {
	ctx   *Context
	id    uint32
	stage ShaderStage
}

// CompileShader creates a shader object and compiles source into it.
// If compilation fails, the shader is still returned together with
// a *ShaderError. The caller owns the shader in both cases.
func CompileShader(ctx *Context, stage ShaderStage, source string) (*Shader, error) {
	shader := &Shader{
		ctx:   ctx,
		id:    ctx.CreateShader(uint32(stage)),
		stage: stage,
	}

	ctx.ShaderSource(shader.id, source)
	ctx.CompileShader(shader.id)

	if !ctx.ShaderCompileStatus(shader.id) {
		return shader, &ShaderError{
			Stage:  stage.String(),
			Detail: "COMPILATION_FAILED",
			Log:    ctx.ShaderInfoLog(shader.id),
		}
	}

	slog.Debug("Compiled shader", slog.String("stage", stage.String()))

	return shader, nil
}

func (s *Shader) ID() uint32 {
	return s.id
}

func (s *Shader) Stage() ShaderStage {
	return s.stage
}

func (s *Shader) Release() {
	if s == nil || s.id == 0 {
		return
	}

	s.ctx.DeleteShader(s.id)
	s.id = 0
}
