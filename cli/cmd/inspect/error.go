package inspect

import "github.com/ardnew/denv/pkg"

// Sentinel errors.
var ErrOutOfBounds = pkg.NewError("index out of range")
