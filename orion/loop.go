package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/learngl/glimpse"
	"github.com/oliverbestmann/learngl/glm"
	"github.com/oliverbestmann/learngl/pulse"
)

type Phase int

const (
	PhaseRunning Phase = iota
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseClosed:
		return "Closed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type LoopState struct {
	Window glimpse.Window
	Game   Game
	Phase  Phase

	// current viewport size in pixels
	Viewport glm.Vec2u

	ClearColor pulse.Color

	Times FrameTimes

	clear *pulse.ClearCommand
}

func (s *LoopState) resize(ctx *pulse.Context, width, height int) {
	slog.Debug("Resize viewport",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	ctx.SetViewport(width, height)
	s.Viewport = glm.Vec2u{uint32(width), uint32(height)}
}

func loopOnce(ctx *pulse.Context, loopState *LoopState, inputState glimpse.UpdateInputState) error {
	if loopState.Times.Tick() {
		slog.Debug("Frame times",
			slog.Uint64("frames", loopState.Times.FrameCount),
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)
	}

	input := inputState()
	processInput(loopState.Window, input)

	if err := loopState.Game.Update(input); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	loopState.clear.Clear(loopState.ClearColor)
	loopState.Game.Draw(ctx)

	return nil
}

// processInput requests the window to close once escape is pressed.
// The current frame still completes, the loop stops before the next one.
func processInput(win glimpse.Window, input glimpse.InputState) {
	if input.Keys.Pressed[glimpse.KeyEscape] && !win.ShouldClose() {
		slog.Info("Escape pressed, closing window")
		win.SetShouldClose(true)
	}
}
