package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultBackground is the window colour of the card viewer
const DefaultBackground = "#5c4d42"

// Config represents the application configuration
type Config struct {
	Catalog    string `toml:"catalog" env:"GUBS_CATALOG"`       // empty means the built-in table
	Background string `toml:"background" env:"GUBS_BACKGROUND"` // hex colour behind card images
	Color      bool   `toml:"color" env:"GUBS_COLOR"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Background: DefaultBackground,
		Color:      true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file, or "" when there is
// no config home to put it in
func GetConfigFilePath() string {
	home := GetXDGConfigHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "gubs", "config.toml")
}

// LoadEnvFile loads a .env file from the working directory if there is one.
// A missing file is fine; any other problem is logged.
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}
}

// LoadConfig reads the config file, then applies GUBS_* environment
// overrides. A missing file is created with defaults; if that fails the
// defaults are used anyway. Only a config file that exists but cannot be
// decoded is an error.
func LoadConfig() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	return cfg, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()
	if configPath == "" {
		log.Printf("no config directory, using defaults")
		return Default(), nil
	}

	// Anything short of an existing regular file means there is no config
	// to read
	info, err := os.Stat(configPath)
	if err != nil || !info.Mode().IsRegular() {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		log.Printf("using default config: %v", err)
	}
	return config, nil
}

// Save writes config to the config file, creating its directory
func Save(config *Config) error {
	configPath := GetConfigFilePath()
	if configPath == "" {
		return fmt.Errorf("no config directory: set XDG_CONFIG_HOME or HOME")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
