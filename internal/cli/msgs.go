package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate wp-config.php from a WP Starter template"
	MsgBuildShort      = "Run installation steps and write the target file"
	MsgRenderShort     = "Print the rendered file without writing it"
	MsgSectionsShort   = "List the sections of a file"
	MsgSectionsLong    = "Sections lists the named sections of a file with their line ranges and the number of blocks wpconf manages in each. Without an argument the target is listed when it exists, the template otherwise."
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Config prints the effective configuration as TOML, after defaults, config file, .env and environment variables are applied. With --init it prints a commented starter wpconf.toml instead."
	MsgWatchShort      = "Rebuild whenever the template or configuration changes"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWatching       = "Watching for changes, press Ctrl+C to stop"
	MsgVersionFormat  = "wpconf version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Configuration file (default: wpconf.toml or .wpconf.toml in the project root)"
	MsgFlagRoot         = "Project root (default: $WPCONF_ROOT, the enclosing git work tree, or the current directory)"
	MsgFlagFormat       = "Output format: auto, term, text, json or yaml"
	MsgFlagDryRun       = "Print a diff instead of writing the target"
	MsgFlagFromTarget   = "Edit the existing target instead of the template"
	MsgFlagInit         = "Print a commented starter configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
