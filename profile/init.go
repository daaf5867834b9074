package profile

import (
	"path/filepath"

	"github.com/ardnew/denv/pkg"
)

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Session describes a single profiling run.
type Session struct {
	// Mode is one of [Modes]. An empty Mode disables profiling.
	Mode string
	// Dir receives the profile; [DefaultDir] when empty.
	Dir string
	// Quiet suppresses the messages of the underlying profiler.
	Quiet bool
}

// Option returns its argument with one setting changed.
type Option func(Session) Session

// New returns a Session with opts applied in order.
func New(opts ...Option) Session {
	var s Session

	for _, opt := range opts {
		s = opt(s)
	}

	return s
}

// WithMode sets the profiling mode.
func WithMode(mode string) Option {
	return func(s Session) Session {
		s.Mode = mode

		return s
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(s Session) Session {
		s.Dir = dir

		return s
	}
}

// WithQuiet sets whether the profiler reports where it writes.
func WithQuiet(quiet bool) Option {
	return func(s Session) Session {
		s.Quiet = quiet

		return s
	}
}

// DefaultDir returns the directory profiles are written to by default: the
// pprof directory of the denv cache.
func DefaultDir() string {
	return filepath.Join(pkg.CacheDir(), Tag)
}

// Start begins profiling and returns a Stopper that ends it.
//
// Without the pprof build tag, or with an empty or unknown mode, Start
// returns a no-op. Both Start and Stop are always safely callable.
func (s Session) Start() Stopper {
	if s.Mode == "" {
		return ignore{}
	}

	if s.Dir == "" {
		s.Dir = DefaultDir()
	}

	return start(s)
}

type ignore struct{}

func (ignore) Stop() {}
