package tool

import "github.com/ardnew/denv/pkg"

// Predefined errors (sentinel values).
var (
	ErrToolNotFound = pkg.NewError("tool not found")
	ErrReadInput    = pkg.NewError("failed to read tool definition")
	ErrDecode       = pkg.NewError("invalid tool definition")

	errDecimal = pkg.NewError("decimal numbers must be quoted to keep their text")
)
