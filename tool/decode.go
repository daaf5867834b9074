package tool

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/env"
)

// Decode parses a tool definition. The format is chosen by the extension of
// filename: ".hcl" is HCL, anything else is YAML (which includes JSON).
func Decode(data []byte, filename string) (env.Spec, error) {
	if strings.EqualFold(filepath.Ext(filename), ".hcl") {
		return decodeHCL(data, filename)
	}

	return decodeYAML(data, filename)
}

func decodeYAML(data []byte, filename string) (env.Spec, error) {
	var doc yaml.MapSlice

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return env.Spec{}, ErrDecode.Wrap(err).
			With(slog.String("file", filename))
	}

	var spec env.Spec

	for _, item := range doc {
		key, err := scalar(item.Key)
		if err != nil || key == "" {
			return env.Spec{}, ErrDecode.With(
				slog.String("file", filename),
				slog.String("issue", fmt.Sprintf("invalid key %v", item.Key)),
			)
		}

		value, err := yamlValue(item.Value, true)
		if err != nil {
			return env.Spec{}, ErrDecode.Wrap(err).With(
				slog.String("file", filename),
				slog.String("key", key),
			)
		}

		spec.Set(key, value)
	}

	return spec, nil
}

// yamlValue converts a decoded YAML node. Platform mappings may not nest.
func yamlValue(v any, variant bool) (env.Value, error) {
	switch t := v.(type) {
	case []any:
		items := make([]string, len(t))

		for i, elem := range t {
			s, err := scalar(elem)
			if err != nil {
				return env.Value{}, fmt.Errorf("list item %d: %w", i, err)
			}

			items[i] = s
		}

		return env.List(items...), nil

	case yaml.MapSlice:
		if !variant {
			return env.Value{}, fmt.Errorf("nested platform mapping")
		}

		variants := make(map[string]env.Value, len(t))

		for _, item := range t {
			name, err := scalar(item.Key)
			if err != nil {
				return env.Value{}, fmt.Errorf("invalid platform %v", item.Key)
			}

			sel, err := yamlValue(item.Value, false)
			if err != nil {
				return env.Value{}, fmt.Errorf("platform %s: %w", name, err)
			}

			variants[strings.ToLower(name)] = sel
		}

		return env.Variant(variants), nil

	default:
		s, err := scalar(v)
		if err != nil {
			return env.Value{}, err
		}

		return env.Scalar(s), nil
	}
}

// scalar formats a YAML scalar as text. A null value is the empty string.
//
// Decimal numbers are rejected: the decoder does not keep their source text,
// so a version like 2.10 would read back as 2.1.
func scalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return "", fmt.Errorf("%w: %v", errDecimal, t)
	default:
		return "", fmt.Errorf("unsupported %T", v)
	}
}
