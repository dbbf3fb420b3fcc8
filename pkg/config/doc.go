// Package config handles configuration management for treeprune.
// It layers embedded TOML defaults, an optional TOML file, TREEPRUNE_*
// environment variables and explicitly set command-line flags.
package config
