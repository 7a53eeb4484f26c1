package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides: PORTFOLIO_BASE_PATH -> base_path.
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration.
type Config struct {
	Addr                 string `yaml:"addr" koanf:"addr"`
	BasePath             string `yaml:"base_path" koanf:"base_path"`
	AssetPrefix          string `yaml:"asset_prefix" koanf:"asset_prefix"`
	ImagesDir            string `yaml:"images_dir" koanf:"images_dir"`
	OutputDir            string `yaml:"output_dir" koanf:"output_dir"`
	GinMode              string `yaml:"gin_mode" koanf:"gin_mode"`
	TrackVisitors        bool   `yaml:"track_visitors" koanf:"track_visitors"`
	DatabasePath         string `yaml:"database_path" koanf:"database_path"`
	VisitorRetentionDays int    `yaml:"visitor_retention_days" koanf:"visitor_retention_days"`
	AdminUsername        string `yaml:"admin_username" koanf:"admin_username"`
	AdminPassword        string `yaml:"admin_password,omitempty" koanf:"admin_password"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:                 ":8080",
		ImagesDir:            "images",
		OutputDir:            "out",
		GinMode:              "release",
		TrackVisitors:        true,
		DatabasePath:         "portfolio.db",
		VisitorRetentionDays: 365,
		AdminUsername:        "admin",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PORT is what most hosting platforms set.
	if port := os.Getenv("PORT"); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML encodes the configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

var validGinModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.BasePath != "" && !strings.HasPrefix(strings.TrimSpace(c.BasePath), "/") {
		return fmt.Errorf("invalid base_path %q: must start with /", c.BasePath)
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid gin_mode %q: must be one of debug, release, test", c.GinMode)
	}
	if c.TrackVisitors && c.DatabasePath == "" {
		return fmt.Errorf("database_path is required when track_visitors is enabled")
	}
	if c.VisitorRetentionDays < 0 {
		return fmt.Errorf("visitor_retention_days must be non-negative")
	}
	if c.AdminPassword != "" && c.AdminUsername == "" {
		return fmt.Errorf("admin_username is required when admin_password is set")
	}
	return nil
}

// Redacted returns a copy safe to print, with secrets cleared.
func (c *Config) Redacted() *Config {
	out := *c
	out.AdminPassword = ""
	return &out
}

// AdminEnabled reports whether the admin dashboard should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}
