//go:build !headless

package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
}

type glfwWindow struct {
	win   *glfw.Window
	prof  profiler
	input InputState

	resizeHandlers []func(width, height int)
}

// NewWindow opens a window with an OpenGL core profile context and makes
// the context current on the calling thread.
func NewWindow(opts WindowOptions) (Window, error) {
	prof, err := startProfile(opts.Profile)
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		prof.Stop()
		return nil, fmt.Errorf("%w: initialize glfw: %w", ErrNoDisplay, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		prof.Stop()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()

	// wait for vsync in SwapBuffers
	glfw.SwapInterval(1)

	w := &glfwWindow{
		win:  window,
		prof: prof,
	}

	configureInput(window, &w.input)

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		slog.Debug("Framebuffer resized",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		for _, fn := range w.resizeHandlers {
			fn(width, height)
		}
	})

	return w, nil
}

func (g *glfwWindow) FramebufferSize() (int, int) {
	return g.win.GetFramebufferSize()
}

func (g *glfwWindow) OnFramebufferResize(fn func(width, height int)) {
	g.resizeHandlers = append(g.resizeHandlers, fn)
}

func (g *glfwWindow) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *glfwWindow) SetShouldClose(value bool) {
	g.win.SetShouldClose(value)
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
	g.prof.Stop()
}

func (g *glfwWindow) Run(render func(input UpdateInputState) error) error {
	var updateInputState UpdateInputState = func() InputState {
		return g.input
	}

	for !g.win.ShouldClose() {
		if err := render(updateInputState); err != nil {
			return err
		}

		g.win.SwapBuffers()

		glfw.PollEvents()
	}

	return nil
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := glfwToKey[glfwKey]
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			input.Keys.Press(key)

		case glfw.Release:
			input.Keys.Release(key)
		}
	})
}
