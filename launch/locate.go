package launch

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/denv/env"
)

// DefaultPathExt is used on Windows when the environment has no PATHEXT.
const DefaultPathExt = ".COM;.EXE;.BAT;.CMD"

// Locate finds the executable name using the PATH of e.
//
// A name containing a directory separator of p is checked as given, relative
// to the working directory. Otherwise each directory of PATH is searched in
// order, skipping repeated entries. On Windows the extensions of PATHEXT are
// also tried, unless name already ends with one of them.
func Locate(name string, e env.Env, p env.Platform) (string, error) {
	if name == "" {
		return "", ErrMissingExecutable.With(slog.String("name", name))
	}

	exts := extensions(name, e, p)

	if p.IsPath(name) {
		if path, ok := probe(name, exts, p); ok {
			return path, nil
		}

		return "", ErrMissingExecutable.With(slog.String("name", name))
	}

	dirs := SearchPath(e, p)

	for _, dir := range dirs {
		if path, ok := probe(filepath.Join(dir, name), exts, p); ok {
			return path, nil
		}
	}

	return "", ErrMissingExecutable.With(
		slog.String("name", name),
		slog.Any("path", dirs),
	)
}

// SearchPath returns the directories of the PATH of e in search order,
// without empty or repeated entries.
func SearchPath(e env.Env, p env.Platform) []string {
	return slices.Collect(mung.Make(
		mung.WithSubjectItems(e.Get(pathKey(e, p))),
		mung.WithDelim(p.PathListSeparator),
	).Filtered())
}

// pathKey returns the key holding the search path. Windows keys are case
// insensitive, so "Path" is accepted there.
func pathKey(e env.Env, p env.Platform) string {
	if p.Name == env.Windows {
		for key := range e.Keys() {
			if strings.EqualFold(key, "PATH") {
				return key
			}
		}
	}

	return "PATH"
}

// extensions returns the suffixes to try for name; the empty suffix first.
func extensions(name string, e env.Env, p env.Platform) []string {
	if p.Name != env.Windows {
		return []string{""}
	}

	pathext, ok := e.Lookup("PATHEXT")
	if !ok || pathext == "" {
		pathext = DefaultPathExt
	}

	exts := []string{""}

	for _, ext := range p.SplitList(pathext) {
		if ext == "" {
			continue
		}

		if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
			return []string{""}
		}

		exts = append(exts, ext)
	}

	return exts
}

func probe(base string, exts []string, p env.Platform) (string, bool) {
	for _, ext := range exts {
		path := base + ext
		if isExecutable(path, p) {
			return path, true
		}
	}

	return "", false
}

// isExecutable reports whether path is a regular file that can be executed.
// Only Windows ignores permission bits.
func isExecutable(path string, p env.Platform) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return p.Name == env.Windows || info.Mode().Perm()&0o111 != 0
}
