// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
// The package-level functions write to a default logger on stderr:
//
//	log.Warn("tool not found", slog.String("tool", "maya"))
//
// [Config] reconfigures the default logger in place, which is how the
// command-line flags take effect:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatJSON))
//
// Independent loggers are made with [Make] and derived with [Logger.Wrap]
// and [Logger.With]:
//
//	logger := log.Make(os.Stderr, log.WithTimeLayout("none"))
//	logger = logger.With(slog.String("tool", "maya"))
//	logger.Info("loaded") // includes tool=maya
//
// # Levels
//
// In addition to the [log/slog] levels, [LevelTrace] is available for very
// verbose diagnostics. Messages below the configured level are discarded;
// the default is [LevelWarn].
//
// # Output Formats
//
// [FormatText] (default) writes one line per message. With [WithPretty]
// enabled (default), the line is aligned and colorized when the output is a
// terminal. [FormatJSON] writes one JSON object per line.
//
// # Context
//
// Each level has a context-aware and context-unaware variant.
// Context-unaware variants use [DefaultContextProvider], which returns
// [context.TODO] by default.
package log
