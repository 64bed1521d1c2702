package pulse

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/golang-lru/v2"
)

// ProgramCache keeps linked programs by their source. Programs that are
// evicted or purged from the cache are released.
type ProgramCache struct {
	ctx   *Context
	cache *lru.Cache[ProgramSource, *Program]
}

func NewProgramCache(ctx *Context, size int) *ProgramCache {
	cache, err := lru.NewWithEvict[ProgramSource, *Program](size, releaseProgramOnEviction)
	if err != nil {
		panic(fmt.Sprintf("create program cache of size %d: %s", size, err))
	}

	return &ProgramCache{ctx: ctx, cache: cache}
}

// Get returns the program for src, building it on first use. A program
// that failed to compile or link is cached anyway. Only the call that built
// it reports the build error. The cache owns the returned program.
func (pc *ProgramCache) Get(src ProgramSource) (*Program, error) {
	if program, ok := pc.cache.Get(src); ok {
		return program, nil
	}

	program, err := src.Build(pc.ctx)
	pc.cache.Add(src, program)

	if err != nil {
		return program, fmt.Errorf("build program: %w", err)
	}

	return program, nil
}

func (pc *ProgramCache) Len() int {
	return pc.cache.Len()
}

// Purge releases all cached programs.
func (pc *ProgramCache) Purge() {
	pc.cache.Purge()
}

func releaseProgramOnEviction(_ ProgramSource, program *Program) {
	slog.Debug("Release shader program", slog.Int("id", int(program.id)))
	program.Release()
}
