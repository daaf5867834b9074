package env

// Option applies a configuration option to config.
type Option func(config) config

// config holds the settings of [Resolve] and [Build].
type config struct {
	platform      Platform
	allowCycle    bool
	allowKeyClash bool
	cleanup       bool
}

// makeConfig creates a config for the host platform with every tolerance
// disabled, overridden by any provided options.
func makeConfig(opts ...Option) config {
	c := config{platform: Host()}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithPlatform selects platform variants and separators for p instead of
// the host platform.
func WithPlatform(p Platform) Option {
	return func(c config) config {
		c.platform = p

		return c
	}
}

// WithAllowCycle controls whether reference cycles are tolerated.
//
// When enabled, keys that cannot be ordered are expanded last, in
// specification order, with whatever values are known at that point. The
// result is deterministic but otherwise unspecified.
func WithAllowCycle(allow bool) Option {
	return func(c config) config {
		c.allowCycle = allow

		return c
	}
}

// WithAllowKeyClash controls whether dynamic keys may expand to a key that
// is already defined with a different value. When enabled, the value
// processed last wins.
func WithAllowKeyClash(allow bool) Option {
	return func(c config) config {
		c.allowKeyClash = allow

		return c
	}
}

// WithCleanup controls whether [Cleanup] is applied to the result.
func WithCleanup(enable bool) Option {
	return func(c config) config {
		c.cleanup = enable

		return c
	}
}
