package cmd

import (
	"context"
	"os"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/launch"
)

// Launch runs an executable in the environment composed from the selected
// tools merged into the current environment.
type Launch struct {
	Selection `embed:""`

	Executable string   `arg:"" help:"Executable name or path"                    name:"executable"`
	Args       []string `arg:"" help:"Arguments passed to the executable" name:"args"       optional:"" passthrough:""`
}

// Run executes the launch command.
//
// A child that exits unsuccessfully yields a *[launch.ExitError] carrying its
// exit status.
func (l *Launch) Run(ctx context.Context, g *Globals) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	resolved, p, err := l.resolve(ctx, g)
	if err != nil {
		return err
	}

	merged := env.Merge(resolved, env.FromEnvironFor(environFrom(ctx), p))

	path, err := launch.Locate(l.Executable, merged, p)
	if err != nil {
		return err
	}

	return launch.Run(ctx, path, merged, l.Args, launch.Stdio{
		In:  os.Stdin,
		Out: outputFrom(ctx),
		Err: os.Stderr,
	})
}
