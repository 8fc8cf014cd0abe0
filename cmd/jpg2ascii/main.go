package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/nebbyJammin/jpg2ascii/internal/cmd"
	"github.com/nebbyJammin/jpg2ascii/internal/config"
	"github.com/nebbyJammin/jpg2ascii/internal/configpaths"
	"github.com/nebbyJammin/jpg2ascii/internal/log"
	"github.com/nebbyJammin/jpg2ascii/internal/terminal"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("jpg2ascii"),
		kong.Description(Description()),
		kong.UsageOnError(),
		kong.Vars(config.Vars(Version)),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}

	env, restore := terminal.CurrentEnv(os.Stdout)

	ctx.Bind(logger)
	ctx.Bind(&cmd.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Env:    env,
	})

	err = ctx.Run()

	_ = restore()
	for _, c := range closeFiles {
		_ = c.Close()
	}

	if err != nil {
		logger.Error("conversion failed", "input", cli.Convert.Input, "error", err)
		os.Exit(1)
	}
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("JPG2ASCII_CONFIG")
}
