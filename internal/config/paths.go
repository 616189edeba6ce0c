package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/ownerbench/internal/messages"
)

var homeDirFunc = homedir.Dir

// DefaultPath returns ~/.config/ownerbench/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDirFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
	}
	return filepath.Join(home, ".config", "ownerbench", "config.toml"), nil
}

// ResolvePath returns the config path to load and whether it was requested
// explicitly. flagValue is the --config flag; a leading ~ is expanded.
func ResolvePath(flagValue string) (string, bool, error) {
	trimmed := strings.TrimSpace(flagValue)
	if trimmed == "" {
		path, err := DefaultPath()
		return path, false, err
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", true, fmt.Errorf(messages.ConfigExpandPathErrFmt, trimmed, err)
	}
	return expanded, true, nil
}
