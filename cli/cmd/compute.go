package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
)

// Compute prints the environment composed from the selected tools.
type Compute struct {
	Selection `embed:""`

	Merge  bool   `help:"Merge the result into the current environment"           negatable:""`
	Format string `default:"env" enum:"env,json,yaml,shell" help:"Output format" placeholder:"${enum}" short:"o"`
	Filter string `help:"Print only entries for which the expression is true"     placeholder:"EXPR"`
}

// Run executes the compute command.
func (c *Compute) Run(ctx context.Context, g *Globals) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	result, p, err := c.compute(ctx, g)
	if err != nil {
		return err
	}

	return writeEnv(outputFrom(ctx), result, c.Format, p)
}

func (c *Compute) compute(
	ctx context.Context,
	g *Globals,
) (env.Env, env.Platform, error) {
	// Compile first so a bad expression fails before any tool is read.
	var filterFunc func(env.Env, env.Platform) (env.Env, error)

	if c.Filter != "" {
		program, err := compileFilter(c.Filter)
		if err != nil {
			return env.Env{}, env.Platform{}, err
		}

		filterFunc = func(e env.Env, p env.Platform) (env.Env, error) {
			return filter(program, e, p)
		}
	}

	result, p, err := c.resolve(ctx, g)
	if err != nil {
		return env.Env{}, p, err
	}

	if c.Merge {
		result = env.Merge(result, env.FromEnvironFor(environFrom(ctx), p))

		log.TraceContext(ctx, "merged with process environment",
			slog.Int("keys", result.Len()),
		)
	}

	if filterFunc != nil {
		result, err = filterFunc(result, p)
		if err != nil {
			return env.Env{}, p, err
		}
	}

	return result, p, nil
}
