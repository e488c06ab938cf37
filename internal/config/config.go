// Package config holds the workbench process configuration: where the
// catalog overlay and history live, and how the HTTP dispatcher binds.
// Values come from an optional TOML file, overridden by flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults applied when neither file nor flags set a value.
const (
	DefaultPort    = 8000
	DefaultDataDir = "data"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "workbench.toml"

// Config is the resolved workbench configuration.
type Config struct {
	Port           int      `toml:"port"`
	DataDir        string   `toml:"data_dir"`
	AllowedOrigins []string `toml:"allowed_origins"`
	WatchOverlay   bool     `toml:"watch_overlay"`
}

// Option overrides a loaded config value.
type Option func(*Config)

// WithPort overrides the HTTP port. Zero is ignored.
func WithPort(port int) Option {
	return func(c *Config) {
		if port != 0 {
			c.Port = port
		}
	}
}

// WithDataDir overrides the data directory. Empty is ignored.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.DataDir = dir
		}
	}
}

// WithWatchOverlay toggles the overlay file watcher.
func WithWatchOverlay(watch bool) Option {
	return func(c *Config) { c.WatchOverlay = watch }
}

// Load reads the TOML file at path (missing file is fine), applies defaults,
// then applies the given overrides in order.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Config{
		Port:         DefaultPort,
		DataDir:      DefaultDataDir,
		WatchOverlay: true,
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return cfg, nil
}

// OverlayPath returns the catalog overlay file location.
func (c Config) OverlayPath() string {
	return filepath.Join(c.DataDir, "user_models.json")
}

// HistoryPath returns the request history file location.
func (c Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "request_history.json")
}
