package cmd

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/denv/env"
)

func TestFilter(t *testing.T) {
	e := env.NewEnv(
		"MAYA_VERSION", "2018",
		"MAYA_LOCATION", "/opt/maya2018",
		"PATH", "/opt/maya2018/bin:/usr/bin",
	)

	tests := []struct {
		expr string
		want []string
	}{
		{`key startsWith "MAYA"`, []string{"MAYA_VERSION", "MAYA_LOCATION"}},
		{`value contains "/opt"`, []string{"MAYA_LOCATION", "PATH"}},
		{`len(entries) > 1`, []string{"PATH"}},
		{`platform == "linux" && key == "PATH"`, []string{"PATH"}},
		{`false`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			program, err := compileFilter(tt.expr)
			if err != nil {
				t.Fatalf("compileFilter() error = %v", err)
			}

			got, err := filter(program, e, env.PlatformFor(env.Linux))
			if err != nil {
				t.Fatalf("filter() error = %v", err)
			}

			if keys := slices.Collect(got.Keys()); !slices.Equal(keys, tt.want) {
				t.Errorf("filter() keys = %v, want %v", keys, tt.want)
			}
		})
	}
}

func TestCompileFilterErrors(t *testing.T) {
	for _, src := range []string{
		`key +`,           // syntax
		`value`,           // not a bool
		`undefined == ""`, // unknown variable
	} {
		if _, err := compileFilter(src); !errors.Is(err, ErrFilter) {
			t.Errorf("compileFilter(%q) error = %v, want %v", src, err, ErrFilter)
		}
	}
}
