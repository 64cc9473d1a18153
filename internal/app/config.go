package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "github.com/shhac/discbag/internal/errors"
	"github.com/shhac/discbag/internal/lookup"
)

const (
	// DefaultBaseURL is where the Bag Lookup Service runs in development.
	DefaultBaseURL = "http://localhost:3001"

	// DefaultTimeout bounds a single bag lookup.
	DefaultTimeout = 30 * time.Second
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// BaseURL is the root of the Bag Lookup Service
	BaseURL string

	// Timeout bounds each lookup; zero disables it
	Timeout time.Duration

	// Decode selects the accepted response shape: "auto", "objects" or "names"
	Decode string

	// Theme forces "light" or "dark"; "system" follows the OS and ""
	// uses the theme last picked from the View menu
	Theme string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:   false,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Decode:  string(lookup.DecodeAuto),
		Theme:   "",
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) without overriding the process environment. Missing files
// are not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ConfigFromEnv creates a configuration from environment variables:
// DISCBAG_DEBUG, DISCBAG_BASE_URL, DISCBAG_TIMEOUT, DISCBAG_DECODE and
// DISCBAG_THEME. Unparseable values leave the default in place; Validate
// reports values that parse but cannot be used.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("DISCBAG_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if baseURL := strings.TrimSpace(os.Getenv("DISCBAG_BASE_URL")); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if timeoutStr := os.Getenv("DISCBAG_TIMEOUT"); timeoutStr != "" {
		if timeoutStr == "0" {
			cfg.Timeout = 0
		} else if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			cfg.Timeout = timeout
		}
	}

	if decode := os.Getenv("DISCBAG_DECODE"); decode != "" {
		cfg.Decode = strings.ToLower(strings.TrimSpace(decode))
	}

	if theme := os.Getenv("DISCBAG_THEME"); theme != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(theme))
	}

	return cfg
}

// Validate checks that the configuration can be used to start the app.
func (c *Config) Validate() error {
	if _, err := lookup.NewClient(c.BaseURL, nil); err != nil {
		return apperrors.ValidationError{Field: "DISCBAG_BASE_URL", Message: err.Error()}
	}
	if c.Timeout < 0 {
		return apperrors.ValidationError{Field: "DISCBAG_TIMEOUT", Message: "must not be negative"}
	}
	if _, err := lookup.ParseDecodeMode(c.Decode); err != nil {
		return apperrors.ValidationError{Field: "DISCBAG_DECODE", Message: err.Error()}
	}
	switch c.Theme {
	case "", "system", "light", "dark":
	default:
		return apperrors.ValidationError{Field: "DISCBAG_THEME", Message: fmt.Sprintf("unknown theme %q", c.Theme)}
	}
	return nil
}
