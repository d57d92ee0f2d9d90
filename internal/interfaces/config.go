package interfaces

// Config represents the application configuration
type Config struct {
	CaddyBinary  string `toml:"caddy_binary"`
	OutputName   string `toml:"output_name"`
	TemplateName string `toml:"template_name"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path, falling back to
	// defaults when the file does not exist
	Load(path string) (*Config, error)

	// Validate validates the configuration values
	Validate(config *Config) error
}
