package config

import (
	"os"
	"path/filepath"

	"reqsign/internal/errors"
)

// File and directory names under the home directory.
const (
	HomeDirName    = ".reqsign"
	ConfigFileName = "config.yaml"
	HomeEnv        = "REQSIGN_HOME"
)

// ResolveHome returns override when set, else $REQSIGN_HOME, else ~/.reqsign.
func ResolveHome(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, HomeDirName), nil
}

// DefaultConfigPath returns <home>/config.yaml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ConfigFileName)
}
