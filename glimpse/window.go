package glimpse

import "errors"

// ErrNoDisplay is returned by NewWindow if no window can be opened,
// e.g. because there is no display available.
var ErrNoDisplay = errors.New("no display available")

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// requested OpenGL version, always with the core profile
	ContextVersionMajor int
	ContextVersionMinor int

	// cpu, mem or empty to disable profiling
	Profile string
}

type Window interface {
	// FramebufferSize returns the size of the framebuffer in pixels.
	FramebufferSize() (width, height int)

	// OnFramebufferResize registers fn to be called with the new
	// framebuffer size while events are polled.
	OnFramebufferResize(fn func(width, height int))

	ShouldClose() bool
	SetShouldClose(value bool)

	// Run calls render, swaps buffers and polls events until the close
	// flag is set. An error returned by render stops the loop.
	Run(render func(input UpdateInputState) error) error

	Terminate()
}
