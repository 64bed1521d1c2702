package orion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/learngl/glimpse"
	"github.com/oliverbestmann/learngl/pulse"
)

// RunGame opens the window, initializes the game and runs the render loop
// until the window is closed. All resources are released before RunGame
// returns, on every path.
func RunGame(opts Options) error {
	if opts.Game == nil {
		return errors.New("Game must not be nil")
	}

	opts = opts.withDefaults()

	// create a new window together with its GL context
	win, err := opts.NewWindow(glimpse.WindowOptions{
		Width:               opts.WindowWidth,
		Height:              opts.WindowHeight,
		Title:               opts.WindowTitle,
		ContextVersionMajor: opts.ContextVersionMajor,
		ContextVersionMinor: opts.ContextVersionMinor,
		Profile:             opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	api, err := opts.LoadGL()
	if err != nil {
		return fmt.Errorf("initialize opengl: %w", err)
	}

	ctx := pulse.New(api)

	res := &Resources{
		Context:  ctx,
		Programs: pulse.NewProgramCache(ctx, 4),
	}

	defer res.Programs.Purge()

	loopState := &LoopState{
		Window:     win,
		Game:       opts.Game,
		ClearColor: *opts.ClearColor,
		clear:      pulse.NewClear(ctx),
	}

	// keep the viewport in sync with the framebuffer
	win.OnFramebufferResize(func(width, height int) {
		loopState.resize(ctx, width, height)
	})

	width, height := win.FramebufferSize()
	loopState.resize(ctx, width, height)

	defer opts.Game.Release()

	if err := opts.Game.Initialize(res); err != nil {
		if !pulse.OnlyShaderErrors(err) {
			return fmt.Errorf("initialize game: %w", err)
		}

		reportShaderErrors(opts.Diagnostics, err)

		if opts.StrictShaders {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	slog.Info("Start render loop",
		slog.Int("width", opts.WindowWidth),
		slog.Int("height", opts.WindowHeight),
	)

	loopState.Phase = PhaseRunning

	err = win.Run(func(inputState glimpse.UpdateInputState) error {
		return loopOnce(ctx, loopState, inputState)
	})

	loopState.Phase = PhaseClosed

	slog.Info("Render loop stopped",
		slog.Uint64("frames", loopState.Times.FrameCount),
	)

	return err
}

// reportShaderErrors writes every shader error in err to w, one
// ERROR::SHADER block per failed stage.
func reportShaderErrors(w io.Writer, err error) {
	for _, shaderErr := range pulse.ShaderErrors(err) {
		slog.Warn("Shader error",
			slog.String("stage", shaderErr.Stage),
			slog.String("detail", shaderErr.Detail),
		)

		// driver info logs usually end with a newline already
		_, _ = fmt.Fprint(w, strings.TrimRight(shaderErr.Error(), "\n")+"\n")
	}
}
