package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("JPG2ASCII_CONFIG", "from-env.yaml")

	assert.Equal(t, "a.toml", findUserConfig([]string{"cat.png", "--config", "a.toml"}))
	assert.Equal(t, "b.json", findUserConfig([]string{"--config=b.json", "cat.png"}))
	assert.Equal(t, "from-env.yaml", findUserConfig([]string{"cat.png", "--config"}))
	assert.Equal(t, "from-env.yaml", findUserConfig(nil))
}

func TestDescription(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.Contains(t, Description(), Version)
}
