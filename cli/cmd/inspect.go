package cmd

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/ardnew/denv/cli/cmd/inspect"
)

// Inspect browses the environment composed from the selected tools.
type Inspect struct {
	Selection `embed:""`
}

// Run executes the inspect command.
func (i *Inspect) Run(ctx context.Context, g *Globals) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if !term.IsTerminal(int(os.Stdin.Fd())) ||
		!term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	resolved, p, err := i.resolve(ctx, g)
	if err != nil {
		return err
	}

	return inspect.Run(ctx, resolved, p, cacheDir(ctx), outputFrom(ctx))
}
