// Package config loads client settings from an optional YAML file with
// INDEXDECK_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL    = "http://localhost:8080"
	DefaultBrowseRoot   = "/host"
	DefaultPollInterval = 2 * time.Second
	DefaultMaxResults   = 10
)

// Config holds everything the client needs to reach and present the
// indexing service.
type Config struct {
	ServerURL    string        `yaml:"server_url"`
	BrowseRoot   string        `yaml:"browse_root"`
	PollInterval time.Duration `yaml:"poll_interval"`
	MaxResults   int           `yaml:"max_results"`
	LogFile      string        `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:    DefaultServerURL,
		BrowseRoot:   DefaultBrowseRoot,
		PollInterval: DefaultPollInterval,
		MaxResults:   DefaultMaxResults,
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "indexdeck", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "indexdeck", "config.yaml")
}

// Load reads the config file at path (missing file is not an error),
// then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults apply
		case err != nil:
			return cfg, errors.Wrap(err, "failed to read config file")
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrap(err, "failed to parse config file")
			}
		}
	}
	cfg.applyEnv()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("INDEXDECK_SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("INDEXDECK_BROWSE_ROOT"); v != "" {
		c.BrowseRoot = v
	}
	if v := os.Getenv("INDEXDECK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("INDEXDECK_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.PollInterval = d
		}
	}
	if v := os.Getenv("INDEXDECK_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxResults = n
		}
	}
}
