package glimpse

import (
	"fmt"

	"github.com/pkg/profile"
)

type profiler interface{ Stop() }

type noProfiler struct{}

func (noProfiler) Stop() {}

// startProfile starts the profiler selected by mode. The profile is
// written to a temporary directory once Stop is called.
func startProfile(mode string) (profiler, error) {
	switch mode {
	case "":
		return noProfiler{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfileHeap, profile.NoShutdownHook), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
