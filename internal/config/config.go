package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultDownloadDirectory = "downloads"
	DefaultBitrate           = "192k"
	DefaultMaxArtists        = 3
)

// Config represents the complete application configuration
type Config struct {
	Paths PathsConfig `yaml:"paths"`
	Audio AudioConfig `yaml:"audio"`
}

// PathsConfig contains directory paths for output files
type PathsConfig struct {
	DownloadDirectory string `yaml:"download_directory"`
}

// AudioConfig contains audio conversion settings
type AudioConfig struct {
	Bitrate    string `yaml:"bitrate"`
	MaxArtists int    `yaml:"max_artists"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		Paths: PathsConfig{DownloadDirectory: DefaultDownloadDirectory},
		Audio: AudioConfig{Bitrate: DefaultBitrate, MaxArtists: DefaultMaxArtists},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(configDir, "yt-mp3", "config.yaml")
}

// Load reads and parses the configuration from the specified YAML file.
// Missing fields fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads the config file when it exists and silently falls back
// to defaults when it doesn't. A malformed file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Paths.DownloadDirectory == "" {
		c.Paths.DownloadDirectory = DefaultDownloadDirectory
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = DefaultBitrate
	}
	if c.Audio.MaxArtists <= 0 {
		c.Audio.MaxArtists = DefaultMaxArtists
	}
}
