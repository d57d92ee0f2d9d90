package config

import (
	"os"
	"path/filepath"
)

// fallbackConfigDir is used when neither the home directory nor the
// platform config directory can be determined.
const fallbackConfigDir = "/etc/caddydev"

// ConfigDir returns the directory holding caddydev's own files. It always
// prefers <home>/.config/caddydev, even on platforms with a different
// convention, so the path is identical everywhere a home directory exists.
func ConfigDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "caddydev")
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "caddydev")
	}

	return fallbackConfigDir
}

// ImportFilePath returns the path of the generated Caddyfile holding the
// import directives written by init.
func ImportFilePath() string {
	return filepath.Join(ConfigDir(), "Caddyfile")
}

// SettingsFilePath returns the path of the optional tool settings file.
func SettingsFilePath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if path != "~" && !startsWithTildeSlash(path) {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}

func startsWithTildeSlash(path string) bool {
	return len(path) >= 2 && path[0] == '~' && path[1] == '/'
}
