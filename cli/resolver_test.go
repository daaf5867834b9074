package cli

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", name, err)
	}

	return val
}

func TestResolve(t *testing.T) {
	const doc = `
config:
  log-level: debug
  log_format: json
  log-caller: true
  count: 3
  ratio: 0.5
  tools:
    - maya
    - arnold
other:
  log-level: error
`

	r, err := resolve("config")(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"}, // underscore spelling in the file
		{"log-caller", "true"},
		{"count", "3"},
		{"ratio", "0.5"},
		{"missing", nil},
	}

	for _, tt := range tests {
		if got := resolveFlag(t, r, tt.flag); got != tt.want {
			t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}

	tools, ok := resolveFlag(t, r, "tools").([]any)
	if !ok || !slices.Equal(tools, []any{"maya", "arnold"}) {
		t.Errorf("Resolve(tools) = %#v, want [maya arnold]", tools)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestResolveIgnoresUnusableFiles(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":       "",
		"invalid":     "config: [unterminated",
		"no_mapping":  "other:\n  log-level: debug\n",
		"not_mapping": "config: debug\n",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := resolve("config")(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			if got := resolveFlag(t, r, "log-level"); got != nil {
				t.Errorf("Resolve(log-level) = %v, want nil", got)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestResolveReadError(t *testing.T) {
	r, err := resolve("config")(errorReader{})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("Resolve(log-level) = %v, want nil", got)
	}
}
