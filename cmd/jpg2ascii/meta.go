package main

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = ""
	Commit  = ""
)

var descriptionTemplate = `Convert images to ascii art.
  Version: %s (%s)
  Formats: png, jpeg, gif, bmp, tiff, webp
`

func Description() string {
	return fmt.Sprintf(descriptionTemplate, Version, Commit)
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		if Version == "" {
			Version = info.Main.Version
			if Version == "" || Version == "(devel)" {
				Version = "dev"
			}
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && Commit == "" {
				Commit = setting.Value[:min(len(setting.Value), 7)]
			}
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}
