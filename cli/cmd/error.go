package cmd

import "github.com/ardnew/denv/pkg"

var (
	ErrMarshal       = pkg.NewError("marshal environment")
	ErrWriteConfig   = pkg.NewError("write configuration file")
	ErrFileExists    = pkg.NewError("file exists (use --force to overwrite)")
	ErrInvalidFormat = pkg.NewError("invalid output format")
	ErrFilter        = pkg.NewError("filter expression")
	ErrNotTerminal   = pkg.NewError("standard input and output must be a terminal")
)
