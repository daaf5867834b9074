package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/denv/cli/cmd"
	"github.com/ardnew/denv/pkg"
)

// TestMain points the user directories at a temporary location before any
// of them are computed.
func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "denv-cli-test-*")
	if err != nil {
		panic(err)
	}

	for key, dir := range map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": filepath.Join(home, "config"),
		"XDG_CACHE_HOME":  filepath.Join(home, "cache"),
		"AppData":         filepath.Join(home, "config"),
		"LocalAppData":    filepath.Join(home, "cache"),
	} {
		_ = os.Setenv(key, dir)
	}

	for _, key := range []string{"DENV_TOOL_PATH", "TOOL_ENV", "DENV_PLATFORM"} {
		_ = os.Unsetenv(key)
	}

	code := m.Run()

	_ = os.RemoveAll(home)

	os.Exit(code)
}

func writeTool(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	ctx := cmd.WithOutput(context.Background(), &buf)
	ctx = cmd.WithEnviron(ctx, []string{"PATH=/usr/bin"})

	err := Run(ctx, func(code int) { t.Logf("exit(%d)", code) }, args...)

	return buf.String(), err
}

func TestRunCompute(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "arnold.yaml", "ARNOLD_HOME:\n  linux: /opt/arnold\n  windows: C:/arnold\n")

	out, err := run(t, "--tool-path", dir, "--platform", "linux", "-t", "arnold")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out != "ARNOLD_HOME=/opt/arnold\n" {
		t.Errorf("Run() output = %q", out)
	}

	out, err = run(t, "compute", "--tool-path", dir, "--platform", "windows",
		"--tools", "arnold", "--format", "json")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out, `"ARNOLD_HOME": "C:/arnold"`) {
		t.Errorf("Run() output = %q", out)
	}
}

func TestRunToolPathEnv(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "maya.json", `{"MAYA_LOCATION": "/opt/maya"}`)

	for _, key := range []string{"DENV_TOOL_PATH", "TOOL_ENV"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, dir)

			out, err := run(t, "-t", "maya")
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if out != "MAYA_LOCATION=/opt/maya\n" {
				t.Errorf("Run() output = %q", out)
			}
		})
	}
}

func TestRunDefaultToolDir(t *testing.T) {
	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	writeTool(t, configPath(baseTools), "houdini.hcl", "HFS = \"/opt/hfs\"\n")

	out, err := run(t, "-t", "houdini")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out != "HFS=/opt/hfs\n" {
		t.Errorf("Run() output = %q", out)
	}
}

func TestRunInitAndConfig(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "arnold.yaml", "ARNOLD_HOME:\n  linux: /opt/arnold\n  windows: C:/arnold\n")

	confFile := configPath(baseConfig) + ".yaml"

	t.Cleanup(func() { _ = os.Remove(confFile) })

	if _, err := run(t, "--tool-path", dir, "--platform", "windows", "init", "--force"); err != nil {
		t.Fatalf("init error = %v", err)
	}

	data, err := os.ReadFile(confFile)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if !strings.Contains(string(data), "platform: windows") {
		t.Errorf("config = %q", data)
	}

	// Values now come from the config file.
	out, err := run(t, "-t", "arnold")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out != "ARNOLD_HOME=C:/arnold\n" {
		t.Errorf("Run() output = %q", out)
	}

	// Flags override the config file.
	out, err = run(t, "-t", "arnold", "--platform", "linux")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out != "ARNOLD_HOME=/opt/arnold\n" {
		t.Errorf("Run() output = %q", out)
	}

	if _, err := run(t, "init"); !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("init without --force error = %v, want %v", err, cmd.ErrFileExists)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := run(t); err == nil {
		t.Error("Run() without tools should fail")
	}

	if _, err := run(t, "--tool-path", t.TempDir(), "-t", "missing"); err == nil {
		t.Error("Run() with a missing tool should fail")
	}
}

func TestPaths(t *testing.T) {
	if got := configPath(); got != pkg.ConfigDir() {
		t.Errorf("configPath() = %q, want %q", got, pkg.ConfigDir())
	}

	if got := cachePath("x"); got != filepath.Join(pkg.CacheDir(), "x") {
		t.Errorf("cachePath(x) = %q", got)
	}
}
