package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/shhac/discbag/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DISCBAG_DEBUG", "DISCBAG_BASE_URL", "DISCBAG_TIMEOUT", "DISCBAG_DECODE", "DISCBAG_THEME"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Debug)
	assert.Equal(t, "http://localhost:3001", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "auto", cfg.Decode)
	assert.Empty(t, cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCBAG_DEBUG", "true")
	t.Setenv("DISCBAG_BASE_URL", " https://bags.example.com/api ")
	t.Setenv("DISCBAG_TIMEOUT", "5s")
	t.Setenv("DISCBAG_DECODE", "Names")
	t.Setenv("DISCBAG_THEME", "dark")

	cfg := ConfigFromEnv()

	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://bags.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "names", cfg.Decode)
	assert.Equal(t, "dark", cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCBAG_DEBUG", "maybe")
	t.Setenv("DISCBAG_TIMEOUT", "soon")

	cfg := ConfigFromEnv()

	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestConfigFromEnv_ZeroTimeoutDisables(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCBAG_TIMEOUT", "0")

	assert.Zero(t, ConfigFromEnv().Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"relative base url", func(c *Config) { c.BaseURL = "localhost:3001" }, "DISCBAG_BASE_URL"},
		{"ftp base url", func(c *Config) { c.BaseURL = "ftp://example.com" }, "DISCBAG_BASE_URL"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "DISCBAG_TIMEOUT"},
		{"unknown decode", func(c *Config) { c.Decode = "xml" }, "DISCBAG_DECODE"},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }, "DISCBAG_THEME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)

			err := cfg.Validate()
			var validationErr apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("DISCBAG_BASE_URL"))
	t.Setenv("DISCBAG_THEME", "light")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DISCBAG_BASE_URL=http://bags.test:8080\nDISCBAG_THEME=dark\n"), 0600))

	require.NoError(t, LoadDotEnv(path))

	cfg := ConfigFromEnv()
	assert.Equal(t, "http://bags.test:8080", cfg.BaseURL)
	assert.Equal(t, "light", cfg.Theme, "process environment wins over .env")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
