package tool

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
)

// Extensions lists the recognized definition file extensions in search
// order.
var Extensions = []string{".yaml", ".yml", ".json", ".hcl"}

// Loader finds tool definitions in a list of directories.
type Loader struct {
	// Paths holds the directories searched for definition files, in order.
	Paths []string
}

// ParsePaths splits a search path list such as the value of DENV_TOOL_PATH
// on the host path list separator. Empty entries are dropped.
func ParsePaths(s string) []string {
	return slices.DeleteFunc(
		filepath.SplitList(s),
		func(p string) bool { return strings.TrimSpace(p) == "" },
	)
}

// Load returns the specification of the named tool.
//
// The first definition file found for name wins: directories are searched
// in order, and within each directory the [Extensions] in order. A name with
// a recognized extension that refers to an existing file is loaded directly.
func (l Loader) Load(ctx context.Context, name string) (env.Spec, error) {
	path, err := l.find(ctx, name)
	if err != nil {
		return env.Spec{}, err
	}

	spec, err := ReadFile(ctx, path)
	if err != nil {
		return env.Spec{}, err
	}

	log.DebugContext(ctx, "tool loaded",
		slog.String("tool", name),
		slog.String("path", path),
		slog.Int("keys", spec.Len()),
	)

	return spec, nil
}

// Discover loads each of the named tools in order.
func (l Loader) Discover(ctx context.Context, names ...string) ([]env.Spec, error) {
	specs := make([]env.Spec, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		spec, err := l.Load(ctx, name)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func (l Loader) find(ctx context.Context, name string) (string, error) {
	if slices.Contains(Extensions, strings.ToLower(filepath.Ext(name))) {
		if isFile(name) {
			return name, nil
		}
	}

	for _, dir := range l.Paths {
		for _, ext := range Extensions {
			path := filepath.Join(dir, name+ext)

			log.TraceContext(ctx, "tool search", slog.String("path", path))

			if isFile(path) {
				return path, nil
			}
		}
	}

	return "", ErrToolNotFound.With(
		slog.String("tool", name),
		slog.Any("paths", l.Paths),
	)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// ReadFile decodes the definition file at path according to its extension.
func ReadFile(ctx context.Context, path string) (env.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return env.Spec{}, ErrToolNotFound.Wrap(err).
				With(slog.String("path", path))
		}

		return env.Spec{}, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	// Read ahead asynchronously while the previous chunk is consumed.
	ra := readahead.NewReader(f)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return env.Spec{}, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	log.TraceContext(ctx, "read input",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)

	return Decode(data, filepath.Base(path))
}
