package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping called name at the top level of a YAML configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Flag names may be spelled with hyphens or underscores. Scalars are passed
// to kong as strings and sequences as lists of strings.
//
// Example config file:
//
//	config:
//	  log-level: debug
//	  log_format: json
//	  tool-path: /opt/tools:/usr/share/denv
//
// Command-line flags override config file values. A file that cannot be
// parsed, or that has no mapping called name, contributes no values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return config{}, nil
		}

		var doc map[string]any

		if err := yaml.Unmarshal(data, &doc); err != nil {
			return config{}, nil
		}

		values, ok := doc[name].(map[string]any)
		if !ok {
			return config{}, nil
		}

		result := make(config, len(values))
		for key, val := range values {
			result[key] = flagValue(val)
		}

		return result, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value to the form kong parses.
func flagValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil

	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case uint64:
		return strconv.FormatUint(v, 10)

	case int64:
		return strconv.FormatInt(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		list := make([]any, 0, len(v))
		for _, item := range v {
			if s := flagValue(item); s != nil {
				list = append(list, s)
			}
		}

		return list

	default:
		return fmt.Sprint(v)
	}
}
