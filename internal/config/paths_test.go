package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHomeDir(t *testing.T, home string, err error) {
	t.Helper()
	orig := homeDirFunc
	homeDirFunc = func() (string, error) { return home, err }
	t.Cleanup(func() { homeDirFunc = orig })
}

func TestDefaultPath(t *testing.T) {
	withHomeDir(t, "/home/tester", nil)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "ownerbench", "config.toml"), path)
}

func TestDefaultPathHomeError(t *testing.T) {
	withHomeDir(t, "", errors.New("no home"))

	_, err := DefaultPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve home dir")
}

func TestResolvePath(t *testing.T) {
	withHomeDir(t, "/home/tester", nil)

	path, explicit, err := ResolvePath("  ")
	require.NoError(t, err)
	assert.False(t, explicit)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "ownerbench", "config.toml"), path)

	path, explicit, err = ResolvePath("/etc/ownerbench.toml")
	require.NoError(t, err)
	assert.True(t, explicit)
	assert.Equal(t, "/etc/ownerbench.toml", path)
}
