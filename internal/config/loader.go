package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.newslens.yaml",               // Project-specific config (highest priority)
	"~/.config/newslens/config.yaml", // User config
	"/etc/newslens/config.yaml",      // System config (lowest priority)
}

// DotEnvPath is loaded before environment overrides are applied, if present
var DotEnvPath = ".env"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	dotEnvPath  string
	warn        func(format string, args ...interface{})
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		dotEnvPath:  DotEnvPath,
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including .env)
// 3. ./.newslens.yaml
// 4. ~/.config/newslens/config.yaml
// 5. /etc/newslens/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warn("failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := l.loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.dotEnvPath, err)
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadDotEnv populates the process environment from a .env file. Variables
// already set in the environment are left untouched.
func (l *Loader) loadDotEnv() error {
	if l.dotEnvPath == "" {
		return nil
	}
	err := godotenv.Load(l.dotEnvPath)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"NEWSLENS_SERVER_BASE_URL": func(v string) error { config.Server.BaseURL = v; return nil },
		"NEWSLENS_SERVER_TIMEOUT":  func(v string) error { return parseDuration(v, &config.Server.Timeout) },

		"NEWSLENS_UI_THEME":         func(v string) error { config.UI.Theme = v; return nil },
		"NEWSLENS_UI_NARROW_WIDTH":  func(v string) error { return parseInt(v, &config.UI.NarrowWidth) },
		"NEWSLENS_UI_ERROR_TIMEOUT": func(v string) error { return parseDuration(v, &config.UI.ErrorTimeout) },
		"NEWSLENS_UI_COPY_TIMEOUT":  func(v string) error { return parseDuration(v, &config.UI.CopyTimeout) },

		"NEWSLENS_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"NEWSLENS_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"NEWSLENS_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		"NEWSLENS_LOG_FILE": func(v string) error { config.Log.File = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Example headlines are separated by "|" since headlines often contain commas
	if examples := os.Getenv("NEWSLENS_UI_EXAMPLES"); examples != "" {
		config.UI.Examples = config.UI.Examples[:0]
		for _, example := range strings.Split(examples, "|") {
			if example = strings.TrimSpace(example); example != "" {
				config.UI.Examples = append(config.UI.Examples, example)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeServerConfig(&dst.Server, &src.Server)
	mergeUIConfig(&dst.UI, &src.UI)
	mergeOutputConfig(&dst.Output, &src.Output)

	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
}

func mergeServerConfig(dst, src *ServerConfig) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
}

func mergeUIConfig(dst, src *UIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.NarrowWidth != 0 {
		dst.NarrowWidth = src.NarrowWidth
	}
	if src.ErrorTimeout != 0 {
		dst.ErrorTimeout = src.ErrorTimeout
	}
	if src.CopyTimeout != 0 {
		dst.CopyTimeout = src.CopyTimeout
	}
	if len(src.Examples) > 0 {
		dst.Examples = src.Examples
	}
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	// false is indistinguishable from unset, so only an explicit true is merged
	if src.Verbose {
		dst.Verbose = true
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
