// Package configpaths lists where configuration files are looked up.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used below the user config dir.
const AppName = "jpg2ascii"

const baseName = "config"

// DefaultConfigDir returns the per-user configuration directory, e.g. ~/.config/jpg2ascii.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

/*
ConfigCandidatePaths returns the config files to try per format, lowest priority first: the user config dir, then the working directory, then userCfg. userCfg only goes to the loader matching its extension (files without a known extension are read as JSON).

Missing files are fine, kong skips them.
*/
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".")

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, baseName+".json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, baseName+".yaml"),
			filepath.Join(dir, baseName+".yml"),
		)
		tomlPaths = append(tomlPaths, filepath.Join(dir, baseName+".toml"))
	}

	if userCfg == "" {
		return jsonPaths, yamlPaths, tomlPaths
	}

	switch strings.ToLower(filepath.Ext(userCfg)) {
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userCfg)
	case ".toml":
		tomlPaths = append(tomlPaths, userCfg)
	default:
		jsonPaths = append(jsonPaths, userCfg)
	}

	return jsonPaths, yamlPaths, tomlPaths
}
