package util

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "sfkit"

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ConfigPath returns the sfkit configuration directory
// (typically ~/.config/sfkit on Linux).
func ConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(HomeDir(), "."+appDirName)
	}
	return filepath.Join(base, appDirName)
}

// CachePath returns the sfkit cache directory
// (typically ~/.cache/sfkit on Linux).
func CachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(HomeDir(), "."+appDirName, "cache")
	}
	return filepath.Join(base, appDirName)
}

// ExpandPath expands a leading ~ to the user's home directory.
// Other paths are returned unchanged.
func ExpandPath(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}
