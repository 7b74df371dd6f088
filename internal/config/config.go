package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Server  ServerConfig `yaml:"server" json:"server"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Output  OutputConfig `yaml:"output" json:"output"`
	Log     LogConfig    `yaml:"log" json:"log"`
}

// ServerConfig configures the prediction backend
type ServerConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url"` // scheme://host[:port] serving /predict and /model-info
	Timeout time.Duration `yaml:"timeout" json:"timeout"`   // per-request timeout
}

// UIConfig configures the interactive terminal UI
type UIConfig struct {
	Theme        string        `yaml:"theme" json:"theme"`                 // default|high-contrast|minimal
	NarrowWidth  int           `yaml:"narrow_width" json:"narrow_width"`   // below this width panes stack vertically
	ErrorTimeout time.Duration `yaml:"error_timeout" json:"error_timeout"` // error view auto-revert delay
	CopyTimeout  time.Duration `yaml:"copy_timeout" json:"copy_timeout"`   // "Copied!" confirmation lifetime
	Examples     []string      `yaml:"examples" json:"examples"`           // example headlines cycled with ctrl+e
}

// OutputConfig configures non-interactive output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// LogConfig configures where log lines go while the TUI owns the terminal
type LogConfig struct {
	File string `yaml:"file" json:"file"`
}

// DefaultExamples are the sample headlines offered by the UI
var DefaultExamples = []string{
	"Senate passes bipartisan infrastructure bill after months of negotiation",
	"Top 10 hidden beaches in Portugal you need to visit this summer",
	"Award-winning actress announces new streaming series",
	"Five morning habits that can improve your mental health",
	"This season's must-have accessories according to fashion editors",
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	examples := make([]string, len(DefaultExamples))
	copy(examples, DefaultExamples)

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			Theme:        "default",
			NarrowWidth:  100,
			ErrorTimeout: 5 * time.Second,
			CopyTimeout:  2 * time.Second,
			Examples:     examples,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Log: LogConfig{
			File: "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateServerConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server base_url is required")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid server base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server base_url: %s (scheme must be http or https)", c.Server.BaseURL)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive")
	}
	return nil
}

func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.NarrowWidth < 0 {
		return fmt.Errorf("narrow_width must be non-negative")
	}
	if c.UI.ErrorTimeout <= 0 {
		return fmt.Errorf("error_timeout must be positive")
	}
	if c.UI.CopyTimeout <= 0 {
		return fmt.Errorf("copy_timeout must be positive")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
