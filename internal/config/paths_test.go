package config

import (
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expected := filepath.Join(home, ".config", "caddydev")
	if got := ConfigDir(); got != expected {
		t.Errorf("ConfigDir() = %q, expected %q", got, expected)
	}

	// The resolver is a pure function of environment state.
	if ConfigDir() != expected {
		t.Error("ConfigDir() is not stable across calls")
	}
}

func TestImportFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expected := filepath.Join(home, ".config", "caddydev", "Caddyfile")
	if got := ImportFilePath(); got != expected {
		t.Errorf("ImportFilePath() = %q, expected %q", got, expected)
	}
}

func TestSettingsFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expected := filepath.Join(home, ".config", "caddydev", "config.toml")
	if got := SettingsFilePath(); got != expected {
		t.Errorf("SettingsFilePath() = %q, expected %q", got, expected)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "tilde slash prefix",
			path:     "~/projects",
			expected: filepath.Join(home, "projects"),
		},
		{
			name:     "bare tilde",
			path:     "~",
			expected: home,
		},
		{
			name:     "absolute path unchanged",
			path:     "/srv/app",
			expected: "/srv/app",
		},
		{
			name:     "tilde user form unchanged",
			path:     "~bob/projects",
			expected: "~bob/projects",
		},
		{
			name:     "relative path unchanged",
			path:     "projects/dev",
			expected: "projects/dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.path); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}
