package configpaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("APPDATA", xdg)

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(dir))
}

func TestConfigCandidatePaths(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("APPDATA", xdg)

	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("")

	require.Len(t, jsonPaths, 2)
	require.Len(t, yamlPaths, 4)
	require.Len(t, tomlPaths, 2)

	// user dir first, working dir second
	assert.Equal(t, filepath.Join(xdg, AppName, "config.json"), jsonPaths[0])
	assert.Equal(t, "config.json", jsonPaths[1])
	assert.Equal(t, filepath.Join(xdg, AppName, "config.yml"), yamlPaths[1])
	assert.Equal(t, "config.toml", tomlPaths[1])
}

func TestConfigCandidatePathsUserConfig(t *testing.T) {
	type testCase struct {
		path                   string
		inJSON, inYAML, inTOML bool
	}

	cases := []testCase{
		{path: "my.yaml", inYAML: true},
		{path: "MY.YML", inYAML: true},
		{path: "settings.toml", inTOML: true},
		{path: "settings.json", inJSON: true},
		{path: "jpg2asciirc", inJSON: true},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths(tc.path)

			last := func(paths []string) bool { return paths[len(paths)-1] == tc.path }
			assert.Equal(t, tc.inJSON, last(jsonPaths))
			assert.Equal(t, tc.inYAML, last(yamlPaths))
			assert.Equal(t, tc.inTOML, last(tomlPaths))
		})
	}
}
