package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.BasePath)
	assert.Equal(t, "release", cfg.GinMode)
	assert.True(t, cfg.TrackVisitors)
	assert.False(t, cfg.AdminEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	original := DefaultConfig()
	original.BasePath = "/portfolio-site"
	original.TrackVisitors = false
	original.VisitorRetentionDays = 30
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nbase_path: /from-file\n"), 0o644))

	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_BASE_PATH", "/from-env")
	t.Setenv("PORTFOLIO_TRACK_VISITORS", "false")
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/from-env", cfg.BasePath)
	assert.False(t, cfg.TrackVisitors)
	assert.True(t, cfg.AdminEnabled())
}

func TestPortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)

	t.Setenv("PORTFOLIO_ADDR", "127.0.0.1:4000")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", cfg.Addr, "explicit addr wins over PORT")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }, "addr is required"},
		{"relative base path", func(c *Config) { c.BasePath = "portfolio" }, "must start with /"},
		{"unknown gin mode", func(c *Config) { c.GinMode = "verbose" }, "invalid gin_mode"},
		{"tracking without db", func(c *Config) { c.DatabasePath = "" }, "database_path is required"},
		{"negative retention", func(c *Config) { c.VisitorRetentionDays = -1 }, "non-negative"},
		{"password without user", func(c *Config) { c.AdminPassword = "x"; c.AdminUsername = "" }, "admin_username is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestYAMLOmitsEmptyPassword(t *testing.T) {
	data, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "admin_password")
	assert.Contains(t, string(data), "base_path:")
}

func TestRedactedClearsPassword(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdminPassword = "s3cret"

	data, err := cfg.Redacted().YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "s3cret")
	assert.Equal(t, "s3cret", cfg.AdminPassword, "original is untouched")
}
