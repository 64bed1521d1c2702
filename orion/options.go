package orion

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/learngl/glimpse"
	"github.com/oliverbestmann/learngl/glm"
	"github.com/oliverbestmann/learngl/pulse"
)

// DefaultClearColor is the background color used if Options.ClearColor is nil.
var DefaultClearColor = pulse.ColorOf(glm.Vec4f{0.2, 0.3, 0.3, 1.0})

type Options struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	ContextVersionMajor int
	ContextVersionMinor int

	ClearColor *pulse.Color

	// shader compile and link logs are written here, defaults to stdout
	Diagnostics io.Writer

	// fail if a shader does not compile or link instead of continuing
	// with an invalid program
	StrictShaders bool

	// cpu, mem or empty, see glimpse.WindowOptions
	Profile string

	// used to create the window and load OpenGL, default to
	// glimpse.NewWindow and pulse.LoadGL
	NewWindow func(opts glimpse.WindowOptions) (glimpse.Window, error)
	LoadGL    func() (pulse.GL, error)
}

func (opts Options) withDefaults() Options {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "LearnOpenGL"
	}

	if opts.ContextVersionMajor == 0 {
		opts.ContextVersionMajor = 3
		opts.ContextVersionMinor = 3
	}

	if opts.ClearColor == nil {
		color := DefaultClearColor
		opts.ClearColor = &color
	}

	if opts.Diagnostics == nil {
		opts.Diagnostics = os.Stdout
	}

	if opts.NewWindow == nil {
		opts.NewWindow = glimpse.NewWindow
	}

	if opts.LoadGL == nil {
		opts.LoadGL = pulse.LoadGL
	}

	return opts
}

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// OptionsFromEnv reads the environment:
//
//	LEARNGL_LOG_LEVEL       DEBUG, INFO, WARN or ERROR, defaults to INFO
//	LEARNGL_PROFILE         cpu or mem to enable profiling
//	LEARNGL_STRICT_SHADERS  1 to fail on shader errors
func OptionsFromEnv(lookup LookupEnv) (Options, slog.Level, error) {
	var opts Options

	level := slog.LevelInfo
	if value, ok := lookup("LEARNGL_LOG_LEVEL"); ok && value != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(value))); err != nil {
			return Options{}, 0, fmt.Errorf("parse LEARNGL_LOG_LEVEL: %w", err)
		}
	}

	if value, ok := lookup("LEARNGL_PROFILE"); ok {
		switch value := strings.ToLower(value); value {
		case "", "cpu", "mem":
			opts.Profile = value
		default:
			return Options{}, 0, fmt.Errorf("LEARNGL_PROFILE: unknown mode %q", value)
		}
	}

	if value, ok := lookup("LEARNGL_STRICT_SHADERS"); ok {
		opts.StrictShaders = value == "1" || strings.EqualFold(value, "true")
	}

	return opts, level, nil
}

// ConfigureLogging installs a text handler writing to w as the default logger.
func ConfigureLogging(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
