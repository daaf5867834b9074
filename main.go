package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/denv/cli"
	"github.com/ardnew/denv/launch"
	"github.com/ardnew/denv/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// A launched executable's exit status is passed through.
		var exitErr *launch.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("launched executable failed", slog.Any("error", exitErr))
			os.Exit(max(exitErr.Code, 1))
		}

		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
