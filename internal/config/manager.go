package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"caddydev-cli/internal/interfaces"
)

// Manager implements the ConfigManager interface
type Manager struct {
	v *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("CADDYDEV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Manager{v: v}
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("caddy_binary", "caddy")
	v.SetDefault("output_name", "Caddyfile.dev")
	v.SetDefault("template_name", "Caddyfile.template")
}

// Load loads configuration from the specified path. An empty path means
// the default settings file under the caddydev config directory. A missing
// file is not an error; defaults (and environment overrides) apply.
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		path = SettingsFilePath()
	}
	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return m.getConfigFromViper(), nil
}

// Validate validates the configuration values
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if config.CaddyBinary == "" {
		return fmt.Errorf("caddy_binary cannot be empty")
	}

	if config.OutputName == "" || strings.ContainsAny(config.OutputName, "/\\") {
		return fmt.Errorf("invalid output_name: %q (must be a bare filename)", config.OutputName)
	}

	if config.TemplateName == "" {
		return fmt.Errorf("template_name cannot be empty")
	}

	return nil
}

// getConfigFromViper converts viper configuration to Config struct.
// This handles env > config > defaults precedence.
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		CaddyBinary:  m.v.GetString("caddy_binary"),
		OutputName:   m.v.GetString("output_name"),
		TemplateName: m.v.GetString("template_name"),
	}
}
