package launch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
)

// Stdio holds the standard streams of a launched process.
type Stdio struct {
	In       io.Reader
	Out, Err io.Writer
}

// DefaultStdio returns the streams of the current process.
func DefaultStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run starts the executable at path with args and exactly the environment
// e, and waits for it to exit.
//
// A process that cannot be started yields [ErrLaunch]. A process that exits
// unsuccessfully yields an *[ExitError] with its exit status. Cancelling ctx
// kills the process.
func Run(
	ctx context.Context,
	path string,
	e env.Env,
	args []string,
	stdio Stdio,
) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = e.Environ()
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	log.DebugContext(ctx, "launch",
		slog.String("path", path),
		slog.Any("args", args),
		slog.Int("env", e.Len()),
	)

	if err := cmd.Start(); err != nil {
		return ErrLaunch.Wrap(err).With(slog.String("path", path))
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Path: path, Code: exitErr.ExitCode(), Err: err}
	}

	return ErrLaunch.Wrap(err).With(slog.String("path", path))
}
