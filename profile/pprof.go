//go:build pprof

package profile

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	"github.com/ardnew/denv/log"
)

// Modes returns the supported profiling modes in lexical order.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(modes))
	},
)

var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// running is an active profiler started by [Session.Start].
type running struct {
	Session

	stop Stopper
}

func (r running) Stop() {
	r.stop.Stop()

	log.Debug("profile written",
		slog.String("mode", r.Mode),
		slog.String("dir", r.Dir),
	)
}

func start(s Session) Stopper {
	mode, ok := modes[s.Mode]
	if !ok {
		log.Warn("unknown profiling mode",
			slog.String("mode", s.Mode),
			slog.Any("modes", Modes()),
		)

		return ignore{}
	}

	// A launched program owns interrupts, so the profiler must not exit on
	// them.
	opts := []func(*profile.Profile){
		mode,
		profile.ProfilePath(s.Dir),
		profile.NoShutdownHook,
	}

	if s.Quiet {
		opts = append(opts, profile.Quiet)
	}

	log.Debug("profiling",
		slog.String("mode", s.Mode),
		slog.String("dir", s.Dir),
	)

	return running{Session: s, stop: profile.Start(opts...)}
}
