package config

import (
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is resolved from XDG data dir at load time
			Path: "",
		},
		History: HistoryConfig{
			MaxEntries:          10000,
			RetentionPeriodDays: 180,
		},
		Sim: SimConfig{
			Location: "https://app.localhost/app/",
			BaseURI:  "https://app.localhost/app/index.html",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultConfigTOML renders the default configuration as TOML, the format
// written when no config file exists yet.
func DefaultConfigTOML() ([]byte, error) {
	return Render(DefaultConfig())
}

// Render serializes a configuration as TOML.
func Render(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
