package cache

import "github.com/ardnew/denv/pkg"

// Predefined errors (sentinel values).
var (
	ErrCorrupt = pkg.NewError("corrupt cache entry")
	ErrEncode  = pkg.NewError("failed to encode cache key")
	ErrWrite   = pkg.NewError("failed to write cache entry")
)
