//go:build pprof

package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" env:"DENV_PPROF_MODE" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}" env:"DENV_PPROF_DIR"     help:"Profile output directory" type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      profile.DefaultDir(),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

// start begins the profiling session selected by the flags, if any.
func (f pprofConfig) start(context.Context) (stop func()) {
	return profile.New(
		profile.WithMode(f.Mode),
		profile.WithDir(f.Dir),
		profile.WithQuiet(true),
	).Start().Stop
}
