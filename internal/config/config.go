// Package config defines the CLI structure and configuration for jpg2ascii.
package config

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nebbyJammin/jpg2ascii/internal/cmd"
	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"warn" enum:"trace,debug,info,warn,error" env:"JPG2ASCII_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to stderr)" env:"JPG2ASCII_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config  string           `help:"Extra JSON, YAML or TOML config file, picked by extension" env:"JPG2ASCII_CONFIG"`
	Version kong.VersionFlag `help:"Print the version and exit"`

	Convert cmd.Convert `embed:""`
}

// Run is called by Kong after parsing, there are no subcommands.
func (c *CLI) Run(logger *slog.Logger, streams *cmd.Streams) error {
	return c.Convert.Run(logger, streams)
}

// Vars are the variables interpolated into the struct tags of CLI.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"version":         version,
		"default_charset": asciiart.DefaultCharset,
		"filters":         strings.Join(asciiart.FilterNames(), ","),
	}
}
