package env

import (
	"runtime"
	"strings"
)

// Well-known platform identifiers. Identifiers follow Go's GOOS naming.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
)

// Platform describes the conventions used to select and join values for a
// target operating system.
type Platform struct {
	// Name identifies the platform in variant values (e.g., "windows").
	Name string
	// PathListSeparator separates the entries of list values like PATH.
	PathListSeparator string
	// DirSeparators holds every character that separates directories in a
	// filesystem path.
	DirSeparators string
}

// PlatformFor returns the conventions of the named platform.
// Windows uses ";" between list entries and accepts both '\' and '/' in
// paths; every other platform uses ":" and '/'.
func PlatformFor(name string) Platform {
	if strings.EqualFold(name, Windows) {
		return Platform{
			Name:              Windows,
			PathListSeparator: ";",
			DirSeparators:     `\/`,
		}
	}

	return Platform{
		Name:              strings.ToLower(name),
		PathListSeparator: ":",
		DirSeparators:     "/",
	}
}

// Host returns the conventions of the running platform.
func Host() Platform {
	return PlatformFor(runtime.GOOS)
}

// IsPath reports whether s contains a directory separator of p.
func (p Platform) IsPath(s string) bool {
	return strings.ContainsAny(s, p.DirSeparators)
}

// SplitList splits a path-list value on the separator of p.
// An empty value yields no entries.
func (p Platform) SplitList(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, p.PathListSeparator)
}

// JoinList joins path-list entries with the separator of p.
func (p Platform) JoinList(list ...string) string {
	return strings.Join(list, p.PathListSeparator)
}
