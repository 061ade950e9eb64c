package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `
[camera]
eye = [0.0, 0.0, 5.0]
width = 640
height = 480

[[object]]
name = "ball"
kind = "radial"
radius = 2.0
`)
	c, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Camera.Width)
	require.Len(t, c.Objects, 1)
	assert.Equal(t, 2.0, c.Objects[0].Radius)
}

func TestReadConfig_UnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[camera]
eye = [0.0, 0.0, 5.0]
zoom = 2.0

[[object]]
name = "ball"
radios = 2.0
`)
	_, err := readConfig(path)
	var unknown errUnknownConfig
	require.ErrorAs(t, err, &unknown)
	assert.ElementsMatch(t, errUnknownConfig{"camera.zoom", "object.radios"}, unknown)
	assert.Contains(t, err.Error(), "camera.zoom")
}

func TestReadConfig_Missing(t *testing.T) {
	_, err := readConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
