// Package cmd implements the denv subcommands.
//
// The compute, launch and inspect commands share the [Selection] flags that
// name the tools to compose, and read the tool search path and target
// platform from [Globals]. The init command writes the current global flag
// values to the configuration file.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file. It is also the name of the top-level mapping
	// in that file holding flag values.
	ConfigIdentifier = "config"

	// ToolPathIdentifier is the kong variable identifier containing the
	// default tool search path.
	ToolPathIdentifier = "toolPath"

	// PlatformIdentifier is the kong variable identifier containing the
	// default target platform.
	PlatformIdentifier = "platform"
)
