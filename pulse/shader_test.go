package pulse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/oliverbestmann/learngl/pulse"
	"github.com/oliverbestmann/learngl/pulse/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

func TestShaderStageString(t *testing.T) {
	assert.Equal(t, "VERTEX", pulse.StageVertex.String())
	assert.Equal(t, "FRAGMENT", pulse.StageFragment.String())
	assert.Equal(t, "ShaderStage(0x1)", pulse.ShaderStage(1).String())
}

func TestCompileShader(t *testing.T) {
	ctx, fake := newContext(t)

	shader, err := pulse.CompileShader(ctx, pulse.StageVertex, vertexSource)
	require.NoError(t, err)

	assert.Equal(t, pulse.StageVertex, shader.Stage())
	assert.Equal(t, vertexSource, fake.Shaders[shader.ID()].Source)
	assert.Zero(t, fake.Count("ShaderInfoLog"))

	shader.Release()
	assert.Zero(t, fake.Live())
}

func TestCompileShaderFailure(t *testing.T) {
	ctx, fake := newContext(t)

	shader, err := pulse.CompileShader(ctx, pulse.StageFragment, "#version 330 core\nvoid mian() {}")
	require.Error(t, err)
	require.NotNil(t, shader)
	defer shader.Release()

	var shaderErr *pulse.ShaderError
	require.ErrorAs(t, err, &shaderErr)

	assert.Equal(t, "FRAGMENT", shaderErr.Stage)
	assert.Equal(t, "COMPILATION_FAILED", shaderErr.Detail)
	assert.NotEmpty(t, shaderErr.Log)
	assert.Equal(t,
		"ERROR::SHADER::FRAGMENT::COMPILATION_FAILED\n"+fake.Shaders[shader.ID()].Log,
		err.Error(),
	)
}

func TestLinkProgramFailure(t *testing.T) {
	ctx, _ := newContext(t)

	vertex, err := pulse.CompileShader(ctx, pulse.StageVertex, vertexSource)
	require.NoError(t, err)
	defer vertex.Release()

	// no fragment stage
	program, err := pulse.LinkProgram(ctx, vertex)
	require.NotNil(t, program)
	defer program.Release()

	var shaderErr *pulse.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, "PROGRAM", shaderErr.Stage)
	assert.Equal(t, "LINK_FAILED", shaderErr.Detail)
	assert.Contains(t, err.Error(), "ERROR::SHADER::PROGRAM::LINK_FAILED\n")
}

func TestBuildDeletesShadersAfterLinking(t *testing.T) {
	ctx, fake := newContext(t)

	src := pulse.ProgramSource{Vertex: vertexSource, Fragment: fragmentSource}

	program, err := src.Build(ctx)
	require.NoError(t, err)

	assert.Empty(t, fake.Shaders)
	assert.Len(t, fake.Programs, 1)
	assert.True(t, fake.Programs[program.ID()].Linked)

	linked := fake.CallIndex("LinkProgram", 0)
	assert.Greater(t, fake.CallIndex("DeleteShader", 0), linked)
	assert.Greater(t, fake.CallIndex("DeleteShader", 1), linked)

	program.Use()
	assert.Equal(t, program.ID(), fake.CurrentProgram)

	program.Release()
	assert.Zero(t, fake.Live())
}

func TestBuildReportsEveryFailure(t *testing.T) {
	ctx, fake := newContext(t)
	fake.Compile = pulsetest.CompileFails("FragColor", "0:3(5): error: `FragColor' undeclared")

	src := pulse.ProgramSource{Vertex: vertexSource, Fragment: fragmentSource}

	program, err := src.Build(ctx)
	require.Error(t, err)
	require.NotNil(t, program)
	defer program.Release()

	shaderErrors := pulse.ShaderErrors(err)
	require.Len(t, shaderErrors, 2)

	assert.Equal(t, "FRAGMENT", shaderErrors[0].Stage)
	assert.Equal(t, "0:3(5): error: `FragColor' undeclared", shaderErrors[0].Log)
	assert.Equal(t, "PROGRAM", shaderErrors[1].Stage)

	// shaders are released even if linking failed
	assert.Empty(t, fake.Shaders)
}

func TestOnlyShaderErrors(t *testing.T) {
	shaderErr := &pulse.ShaderError{Stage: "VERTEX", Detail: "COMPILATION_FAILED"}
	other := errors.New("out of memory")

	assert.False(t, pulse.OnlyShaderErrors(nil))
	assert.True(t, pulse.OnlyShaderErrors(shaderErr))
	assert.True(t, pulse.OnlyShaderErrors(fmt.Errorf("build: %w", errors.Join(shaderErr, shaderErr))))
	assert.False(t, pulse.OnlyShaderErrors(errors.Join(shaderErr, other)))
	assert.False(t, pulse.OnlyShaderErrors(other))

	assert.Len(t, pulse.ShaderErrors(errors.Join(shaderErr, other)), 1)
}

func TestProgramCache(t *testing.T) {
	ctx, fake := newContext(t)

	cache := pulse.NewProgramCache(ctx, 1)

	first := pulse.ProgramSource{Vertex: vertexSource, Fragment: fragmentSource}

	program, err := cache.Get(first)
	require.NoError(t, err)

	again, err := cache.Get(first)
	require.NoError(t, err)
	assert.Same(t, program, again)
	assert.Equal(t, 1, fake.Count("CreateProgram"))

	// a second source evicts the first program
	second := pulse.ProgramSource{Vertex: vertexSource, Fragment: fragmentSource + "\n"}
	_, err = cache.Get(second)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
	assert.Zero(t, program.ID())
	assert.Len(t, fake.Programs, 1)

	cache.Purge()
	assert.Zero(t, fake.Live())
}

func TestProgramCacheKeepsBrokenPrograms(t *testing.T) {
	ctx, fake := newContext(t)

	cache := pulse.NewProgramCache(ctx, 4)
	defer cache.Purge()

	src := pulse.ProgramSource{Vertex: "garbage", Fragment: fragmentSource}

	program, err := cache.Get(src)
	require.Error(t, err)
	require.NotNil(t, program)
	assert.Len(t, pulse.ShaderErrors(err), 2)

	assert.Equal(t, 1, cache.Len())
	assert.Len(t, fake.Programs, 1)
}
