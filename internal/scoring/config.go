package scoring

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds scoring client configuration.
type Config struct {
	// BaseURL is the scoring server root, e.g. "https://academy.example.com".
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8465",
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("WORDWAVE_SERVER_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("WORDWAVE_SERVER_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks the configuration for usability.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("WORDWAVE_SERVER_URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://: %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
