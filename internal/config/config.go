package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults are the builder settings the CLI applies when the matching flag is
// not given.
type Defaults struct {
	Tag        string `mapstructure:"tag"`
	SlugLength int    `mapstructure:"slug_length"`
	Pull       bool   `mapstructure:"pull"`
}

// Config holds the CLI configuration.
type Config struct {
	Defaults     Defaults `mapstructure:"defaults"`
	OTLPEndpoint string   `mapstructure:"otlp_endpoint"`
}

// configDir returns the dockhand configuration directory.
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configHome, "dockhand"), nil
}

// ConfigDir returns the dockhand configuration directory path.
func ConfigDir() (string, error) {
	return configDir()
}

// Init initializes Viper with the configuration file and defaults.
func Init() error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	viper.SetDefault("defaults.tag", "latest")
	viper.SetDefault("defaults.slug_length", 0)
	viper.SetDefault("defaults.pull", false)
	viper.SetDefault("otlp_endpoint", "")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Get returns the current configuration.
func Get() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
