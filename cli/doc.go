// Package cli contains the command line interface for denv.
//
// # Usage
//
//	denv [flags] [compute] -t TOOL[;TOOL...] [--format env|json|yaml|shell]
//	denv [flags] launch -t TOOL[;TOOL...] EXECUTABLE [ARGS...]
//	denv [flags] inspect -t TOOL[;TOOL...]
//	denv [flags] init [--force]
//
// Compute is the default command. Tools are looked up by name in the
// directories of --tool-path (environment DENV_TOOL_PATH or TOOL_ENV), which
// defaults to the tools directory of the configuration directory.
//
// # Configuration
//
// Flag values may also come from config.json or config.yaml in the
// configuration directory. The YAML file holds them in a top-level mapping
// named config, spelled with hyphens or underscores:
//
//	config:
//	  log-level: debug
//	  tool_path: /opt/tools
//
// Command-line flags override config file values. The init command writes the
// current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (kitchen, RFC3339, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// Each may also be set with an environment variable: DENV_LOG_LEVEL,
// DENV_LOG_FORMAT, DENV_LOG_TIME, DENV_LOG_CALLER or DENV_LOG_PRETTY.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o denv .
//
// Such a build adds these flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/denv/pprof)
//
// DENV_PPROF_MODE and DENV_PPROF_DIR set the same options.
//
// # Examples
//
//	# Print the environment of two tools as shell commands
//	denv -t 'maya;arnold' --format shell
//
//	# Run a program with the composed environment
//	denv launch -t maya maya -batch
//
//	# Only the path-like variables, as JSON
//	denv -t maya --filter 'len(entries) > 1' -o json
package cli
