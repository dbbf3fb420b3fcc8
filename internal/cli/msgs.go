package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Prune a directory tree down to the items of one class"
	MsgVersionShort    = "Print version information"
	MsgFormatShort     = "Describe the spec file format"
	MsgManShort        = "Generate man pages"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagSpecFile      = "Spec file listing every item under the root as '<class> <path>'"
	MsgFlagRootDir       = "Directory the spec describes"
	MsgFlagClass         = "Class whose items are kept; items of every other class are removed"
	MsgFlagIgnoreMissing = "Class whose items may already be missing (repeatable)"
	MsgFlagDryRun        = "Run every check and report removals without deleting"
	MsgFlagDisplayLimit  = "Maximum number of paths shown per diagnostic"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagConfig        = "TOML config file (default $TREEPRUNE_CONFIG)"
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagManDir        = "Directory to write man pages into"

	// Version output
	MsgVersionFormat = "treeprune version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
