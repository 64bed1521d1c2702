// Package glimpsetest provides a scriptable glimpse.Window for tests.
package glimpsetest

import (
	"errors"

	"github.com/oliverbestmann/learngl/glimpse"
)

var _ glimpse.Window = (*Window)(nil)

// ErrFrameLimit is returned by Run if the window was not closed
// within MaxFrames frames.
var ErrFrameLimit = errors.New("frame limit reached")

// Window is a fake window. Events are scripted with OnPoll, which is
// called in place of polling the OS event queue after every frame.
type Window struct {
	Width, Height int

	// OnPoll is called after frame number frame (starting at one) has been
	// swapped. Use it to press keys, resize or close the window.
	OnPoll func(w *Window, frame int)

	// Run fails with ErrFrameLimit after this many frames, defaults to 1000.
	MaxFrames int

	Input glimpse.InputState

	Frames     int
	Swaps      int
	Terminated bool

	closed         bool
	resizeHandlers []func(width, height int)
}

func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height}
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Width, w.Height
}

func (w *Window) OnFramebufferResize(fn func(width, height int)) {
	w.resizeHandlers = append(w.resizeHandlers, fn)
}

func (w *Window) ShouldClose() bool {
	return w.closed
}

func (w *Window) SetShouldClose(value bool) {
	w.closed = value
}

// Resize changes the framebuffer size and notifies all resize handlers,
// just like a resize event delivered while polling.
func (w *Window) Resize(width, height int) {
	w.Width, w.Height = width, height

	for _, fn := range w.resizeHandlers {
		fn(width, height)
	}
}

func (w *Window) Run(render func(input glimpse.UpdateInputState) error) error {
	maxFrames := w.MaxFrames
	if maxFrames == 0 {
		maxFrames = 1000
	}

	inputState := func() glimpse.InputState {
		return w.Input
	}

	for !w.closed {
		if w.Frames >= maxFrames {
			return ErrFrameLimit
		}

		w.Frames++

		if err := render(inputState); err != nil {
			return err
		}

		w.Swaps++

		if w.OnPoll != nil {
			w.OnPoll(w, w.Frames)
		}
	}

	return nil
}

func (w *Window) Terminate() {
	w.Terminated = true
}
