package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/log"
	"github.com/ardnew/denv/pkg"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the interpolation variable named name of the kong.Context
// in ctx.
func kongVar(ctx context.Context, name string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", false
	}

	val, ok := ktx.Model.Vars()[name]

	return val, ok
}

type (
	outputKey  struct{}
	environKey struct{}
)

// WithOutput returns a new context.Context whose commands print to w instead
// of standard output.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithEnviron returns a new context.Context whose commands treat environ as
// the current process environment.
func WithEnviron(ctx context.Context, environ []string) context.Context {
	return context.WithValue(ctx, environKey{}, environ)
}

func environFrom(ctx context.Context) []string {
	if environ, ok := ctx.Value(environKey{}).([]string); ok {
		return environ
	}

	return os.Environ()
}

// cacheDir returns the runtime cache directory of the kong.Context in ctx.
func cacheDir(ctx context.Context) string {
	if dir, ok := kongVar(ctx, CacheIdentifier); ok && dir != "" {
		return dir
	}

	return pkg.CacheDir()
}

// uniqueDirs returns the existing directories of paths in order, omitting
// any that refer to the same directory as an earlier entry. Duplicates are
// detected across symlinks and relative or absolute spellings.
func uniqueDirs(ctx context.Context, paths []string) []string {
	dirs := make([]string, 0, len(paths))
	seen := make([]os.FileInfo, 0, len(paths))

	for _, path := range paths {
		info, ok := statDir(path)
		if !ok {
			log.TraceContext(ctx, "skip tool directory",
				slog.String("path", path),
			)

			continue
		}

		dup := false

		for _, prev := range seen {
			if os.SameFile(prev, info) {
				dup = true

				break
			}
		}

		if dup {
			continue
		}

		seen = append(seen, info)
		dirs = append(dirs, path)
	}

	return dirs
}

// statDir resolves path to a directory and returns its file info.
func statDir(path string) (os.FileInfo, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	return info, true
}
