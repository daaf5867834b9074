package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/denv/env"
)

// filterEnv builds the variables visible to a filter expression for one
// environment entry.
func filterEnv(key, value string, p env.Platform) map[string]any {
	return map[string]any{
		"key":      key,
		"value":    value,
		"platform": p.Name,
		"entries":  p.SplitList(value),
	}
}

// compileFilter compiles a boolean filter expression over the variables
// key, value, platform and entries.
func compileFilter(source string) (*vm.Program, error) {
	program, err := expr.Compile(
		source,
		expr.Env(filterEnv("", "", env.Platform{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("source", source))
	}

	return program, nil
}

// filter returns the entries of e for which program evaluates to true.
func filter(program *vm.Program, e env.Env, p env.Platform) (env.Env, error) {
	var out env.Env

	for key, val := range e.All() {
		res, err := expr.Run(program, filterEnv(key, val, p))
		if err != nil {
			return env.Env{}, ErrFilter.Wrap(err).With(slog.String("key", key))
		}

		if keep, _ := res.(bool); keep {
			out.Set(key, val)
		}
	}

	return out, nil
}
