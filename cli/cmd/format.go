package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/env"
)

// Output formats.
const (
	FormatEnv   = "env"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatShell = "shell"
)

// Formats lists the supported output formats.
var Formats = []string{FormatEnv, FormatJSON, FormatYAML, FormatShell}

// writeEnv writes e to w in the named format. The shell format emits
// commands for the shell conventional on platform p.
func writeEnv(w io.Writer, e env.Env, format string, p env.Platform) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatEnv, "":
		data = envText(e)

	case FormatJSON:
		data, err = jsonText(e)

	case FormatYAML:
		data, err = yamlText(e)

	case FormatShell:
		data = shellText(e, p)

	default:
		return ErrInvalidFormat.With(
			slog.String("format", format),
			slog.String("valid", strings.Join(Formats, ",")),
		)
	}

	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", format))
	}

	_, err = w.Write(data)

	return err
}

func envText(e env.Env) []byte {
	var b bytes.Buffer

	for key, val := range e.All() {
		fmt.Fprintf(&b, "%s=%s\n", key, val)
	}

	return b.Bytes()
}

func jsonText(e env.Env) ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	if err := json.Indent(&b, raw, "", "  "); err != nil {
		return nil, err
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func yamlText(e env.Env) ([]byte, error) {
	doc := make(yaml.MapSlice, 0, e.Len())

	for key, val := range e.All() {
		doc = append(doc, yaml.MapItem{Key: key, Value: val})
	}

	return yaml.Marshal(doc)
}

// shellText renders e as POSIX export statements, or as cmd.exe set
// statements when p is windows.
func shellText(e env.Env, p env.Platform) []byte {
	var b bytes.Buffer

	for key, val := range e.All() {
		if p.Name == env.Windows {
			fmt.Fprintf(&b, "set \"%s=%s\"\n", key, val)

			continue
		}

		fmt.Fprintf(&b, "export %s=%s\n", key, shellQuote(val))
	}

	return b.Bytes()
}

// shellQuote quotes s for a POSIX shell using single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
