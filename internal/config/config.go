// Package config loads the arcade configuration from an optional YAML file
// and DEVBREAK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const appDirName = "devbreak"

type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
	Games GamesConfig `yaml:"games"`
	UI    UIConfig    `yaml:"ui"`
}

type StoreConfig struct {
	// Driver is one of json, sqlite or memory.
	Driver string `yaml:"driver" env:"DEVBREAK_STORE_DRIVER"`
	// Path is the state directory, or the database file for sqlite.
	Path string `yaml:"path" env:"DEVBREAK_STORE_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"DEVBREAK_LOG_LEVEL"`
	File  string `yaml:"file" env:"DEVBREAK_LOG_FILE"`
}

type GamesConfig struct {
	// Seed fixes the random source. Zero picks a random seed.
	Seed uint64 `yaml:"seed" env:"DEVBREAK_SEED"`
}

type UIConfig struct {
	AltScreen  bool `yaml:"alt_screen"`
	Animations bool `yaml:"animations"`
}

func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Driver: "json",
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(DefaultStateDir(), "devbreak.log"),
		},
		UI: UIConfig{
			AltScreen:  true,
			Animations: true,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file, or an empty path, yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid store driver %q", c.Store.Driver)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// DefaultStateDir returns ~/.local/state/devbreak, respecting
// XDG_STATE_HOME.
func DefaultStateDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
