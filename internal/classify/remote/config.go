package remote

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds settings for the HTTP prediction backend
type Config struct {
	// BaseURL is the backend root; /predict, /model-info and /health hang off it
	BaseURL string `json:"base_url"`

	// Timeout for each HTTP request
	Timeout time.Duration `json:"timeout"`

	// MaxResponseBytes caps how much of a response body is read
	MaxResponseBytes int64 `json:"max_response_bytes"`
}

// DefaultConfig returns a configuration for a backend on localhost
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          "http://localhost:5000",
		Timeout:          30 * time.Second,
		MaxResponseBytes: 1 << 20,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL: %s", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxResponseBytes <= 0 {
		return fmt.Errorf("max response bytes must be positive")
	}
	return nil
}
