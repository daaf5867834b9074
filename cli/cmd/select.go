package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/ardnew/denv/cache"
	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
	"github.com/ardnew/denv/tool"
)

// cacheSubdir is the subdirectory of the cache directory holding resolved
// environments.
const cacheSubdir = "env"

// Globals holds the flags shared by every command.
type Globals struct {
	ToolPath string `default:"${toolPath}" env:"DENV_TOOL_PATH,TOOL_ENV" help:"Directories searched for tool definitions" placeholder:"DIRS"`
	Platform string `default:"${platform}" env:"DENV_PLATFORM"           help:"Target platform for variant values"        placeholder:"NAME"`
}

// platform returns the target platform.
func (g *Globals) platform() env.Platform {
	if g == nil || g.Platform == "" {
		return env.Host()
	}

	return env.PlatformFor(g.Platform)
}

// loader returns a tool loader searching the tool path.
func (g *Globals) loader(ctx context.Context) tool.Loader {
	if g == nil {
		return tool.Loader{}
	}

	return tool.Loader{Paths: uniqueDirs(ctx, tool.ParsePaths(g.ToolPath))}
}

// Selection names the tools composed into an environment and how the
// composition is resolved.
type Selection struct {
	Tools         []string `help:"Tools to compose, in order"                       name:"tools"       placeholder:"TOOL" required:"" sep:";" short:"t"`
	AllowCycle    bool     `help:"Tolerate dependency cycles between keys"`
	AllowKeyClash bool     `help:"Tolerate dynamic keys that expand to the same name"`
	Cleanup       bool     `help:"Remove empty and duplicate path list entries"`
	Cache         bool     `help:"Reuse environments resolved by earlier runs"       negatable:""`
}

func (s *Selection) options() cache.Options {
	return cache.Options{
		AllowCycle:    s.AllowCycle,
		AllowKeyClash: s.AllowKeyClash,
		Cleanup:       s.Cleanup,
	}
}

// resolve discovers and composes the selected tools for the target platform
// and resolves the result.
func (s *Selection) resolve(
	ctx context.Context,
	g *Globals,
) (env.Env, env.Platform, error) {
	p := g.platform()

	specs, err := g.loader(ctx).Discover(ctx, s.Tools...)
	if err != nil {
		return env.Env{}, p, err
	}

	var (
		store cache.Store
		key   string
	)

	if s.Cache {
		store = cache.Store{Dir: filepath.Join(cacheDir(ctx), cacheSubdir)}
		key = cache.Key(p, s.options(), specs...)

		cached, ok, err := store.Get(ctx, key)
		if err != nil {
			log.WarnContext(ctx, "ignoring cached environment",
				slog.Any("error", err),
			)
		} else if ok {
			return cached, p, nil
		}
	}

	resolved, err := env.Build(
		env.Compose(p, specs...),
		env.WithPlatform(p),
		env.WithAllowCycle(s.AllowCycle),
		env.WithAllowKeyClash(s.AllowKeyClash),
		env.WithCleanup(s.Cleanup),
	)
	if err != nil {
		return env.Env{}, p, err
	}

	log.DebugContext(ctx, "environment resolved",
		slog.String("platform", p.Name),
		slog.Any("tools", s.Tools),
		slog.Int("keys", resolved.Len()),
	)

	if s.Cache {
		if err := store.Put(ctx, key, resolved); err != nil {
			log.WarnContext(ctx, "could not cache environment",
				slog.Any("error", err),
			)
		}
	}

	return resolved, p, nil
}
