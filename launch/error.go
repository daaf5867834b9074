package launch

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/denv/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrMissingExecutable = pkg.NewError("executable not found")
	ErrLaunch            = pkg.NewError("failed to launch")
)

// ExitError reports a child process that ran but did not succeed.
type ExitError struct {
	Path string
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Path + " exited with status " + strconv.Itoa(e.Code)
}

// Unwrap returns the underlying error from os/exec.
func (e *ExitError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *ExitError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", e.Path),
		slog.Int("code", e.Code),
	)
}
