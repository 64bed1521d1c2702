package pulse

import (
	"log/slog"
	"runtime"
)

func init() {
	// the GL context is bound to the thread that made it current
	runtime.LockOSThread()
}

// Context encapsulates the loaded OpenGL function table together with
// some information about the driver that provides it.
type Context struct {
	GL

	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

func New(api GL) *Context {
	ctx := &Context{
		GL:       api,
		Vendor:   api.GetString(glVendor),
		Renderer: api.GetString(glRenderer),
		Version:  api.GetString(glVersion),
		GLSL:     api.GetString(glShadingLanguageVersion),
	}

	slog.Info("OpenGL context ready",
		slog.String("vendor", ctx.Vendor),
		slog.String("renderer", ctx.Renderer),
		slog.String("version", ctx.Version),
		slog.String("glsl", ctx.GLSL),
	)

	return ctx
}

// SetViewport maps normalized device coordinates to the given window region.
func (c *Context) SetViewport(width, height int) {
	c.GL.Viewport(0, 0, int32(width), int32(height))
}

// DrawTriangles draws count vertices of the currently bound vertex array
// as a list of triangles.
func (c *Context) DrawTriangles(first, count int32) {
	c.GL.DrawArrays(glTriangles, first, count)
}
