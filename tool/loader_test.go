package tool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoader_Load(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	writeFile(t, first, "global.json", `{"PIPELINE": "P:/pipeline/dev2_1"}`)
	writeFile(t, first, "maya.yml", "SOURCE: first-yml\n")
	writeFile(t, first, "maya.json", `{"SOURCE": "first-json"}`)
	writeFile(t, second, "maya.yaml", "SOURCE: second-yaml\n")
	writeFile(t, second, "houdini.hcl", "SOURCE = \"second-hcl\"\n")

	loader := Loader{Paths: []string{first, second}}

	tests := []struct {
		tool string
		key  string
		want string
	}{
		{"global", "PIPELINE", "P:/pipeline/dev2_1"},
		{"maya", "SOURCE", "first-yml"},
		{"houdini", "SOURCE", "second-hcl"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			spec, err := loader.Load(context.Background(), tt.tool)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.tool, err)
			}

			v, ok := spec.Get(tt.key)
			if !ok {
				t.Fatalf("Load(%q) has no key %s", tt.tool, tt.key)
			}

			if v.Text != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, v.Text, tt.want)
			}
		})
	}
}

func TestLoader_LoadFilePath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "local.yaml", "A: a\n")

	spec, err := Loader{}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}

	if spec.Len() != 1 {
		t.Errorf("Load(%q) has %d keys, want 1", path, spec.Len())
	}
}

func TestLoader_NotFound(t *testing.T) {
	loader := Loader{Paths: []string{t.TempDir()}}

	if _, err := loader.Load(context.Background(), "nuke"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Load(nuke) error = %v, want %v", err, ErrToolNotFound)
	}
}

func TestLoader_Discover(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "a.yaml", "A: a\n")
	writeFile(t, dir, "b.yaml", "B: b\n")

	loader := Loader{Paths: []string{dir}}

	specs, err := loader.Discover(context.Background(), "b", "a")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("Discover() returned %d specs, want 2", len(specs))
	}

	if _, ok := specs[0].Get("B"); !ok {
		t.Errorf("Discover() did not keep the requested order")
	}

	if _, err := loader.Discover(context.Background(), "a", "missing"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Discover(missing) error = %v, want %v", err, ErrToolNotFound)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.Discover(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Discover(canceled) error = %v, want %v", err, context.Canceled)
	}
}

func TestLoader_DecodeErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "A: [\n")

	_, err := Loader{Paths: []string{dir}}.Load(context.Background(), "bad")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Load(bad) error = %v, want %v", err, ErrDecode)
	}

	if !strings.HasPrefix(err.Error(), ErrDecode.Error()) {
		t.Errorf("Load(bad) error = %q, want prefix %q", err, ErrDecode)
	}
}

func TestParsePaths(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"blank entries", "a" + sep + sep + "b" + sep + " ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePaths(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePaths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
