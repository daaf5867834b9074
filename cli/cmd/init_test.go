package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string) // setup function to prepare test
		wantErr error
	}{
		{
			name:  "create_new_config",
			force: false,
			setup: nil, // no pre-existing file
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name:  "fail_without_force",
			force: false,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			var cli struct {
				Globals `embed:""`
			}

			parser, err := kong.New(&cli, kong.Vars{
				ConfigIdentifier:   confPath,
				ToolPathIdentifier: "/opt/tools",
				PlatformIdentifier: "linux",
			})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithContext(context.Background(), ktx)

			err = (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var doc map[string]map[string]any
			if err := yaml.Unmarshal(content, &doc); err != nil {
				t.Fatalf("generated config is not valid YAML: %v", err)
			}

			conf := doc[ConfigIdentifier]
			if conf["tool-path"] != "/opt/tools" {
				t.Errorf("tool-path = %v, want /opt/tools", conf["tool-path"])
			}

			if conf["platform"] != "linux" {
				t.Errorf("platform = %v, want linux", conf["platform"])
			}
		})
	}
}

// TestInitBuildConfig tests that buildConfig captures set flags and skips
// empty, help and profiling flags.
func TestInitBuildConfig(t *testing.T) {
	t.Parallel()

	var cli struct {
		Verbose   bool     `name:"verbose"`
		Output    string   `name:"output"`
		Empty     string   `name:"empty"`
		Count     int      `name:"count"`
		Names     []string `name:"names"`
		PprofMode string   `name:"pprof-mode"`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse([]string{
		"--verbose", "--output=test.txt", "--count=5",
		"--names=a,b", "--pprof-mode=cpu",
	})
	if err != nil {
		t.Fatal(err)
	}

	doc := (&Init{}).buildConfig(WithContext(context.Background(), ktx))

	if len(doc) != 1 || doc[0].Key != ConfigIdentifier {
		t.Fatalf("buildConfig() = %v, want single %q mapping", doc, ConfigIdentifier)
	}

	entries, ok := doc[0].Value.(yaml.MapSlice)
	if !ok {
		t.Fatalf("config value has type %T, want yaml.MapSlice", doc[0].Value)
	}

	got := entries.ToMap()

	want := map[string]any{
		"verbose": true,
		"output":  "test.txt",
		"count":   5,
	}

	for key, val := range want {
		if got[key] != val {
			t.Errorf("%s = %v, want %v", key, got[key], val)
		}
	}

	for _, key := range []string{"empty", "help", "pprof-mode"} {
		if _, ok := got[key]; ok {
			t.Errorf("unexpected entry %q", key)
		}
	}

	names, ok := got["names"].([]string)
	if !ok || len(names) != 2 {
		t.Errorf("names = %v, want [a b]", got["names"])
	}
}
