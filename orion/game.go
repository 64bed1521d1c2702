package orion

import (
	"github.com/oliverbestmann/learngl/glimpse"
	"github.com/oliverbestmann/learngl/pulse"
)

// Resources are shared by the render loop and the game.
type Resources struct {
	*pulse.Context

	// Programs owns all shader programs. It is purged once the loop ended.
	Programs *pulse.ProgramCache
}

type Game interface {
	// Initialize creates the GPU resources of the game. It runs once,
	// before the first frame.
	Initialize(res *Resources) error

	// Update is called once per frame with the current input.
	Update(input glimpse.InputState) error

	// Draw renders the game after the screen was cleared.
	Draw(ctx *pulse.Context)

	// Release frees all resources created by Initialize. It is called even
	// if Initialize failed halfway.
	Release()
}
