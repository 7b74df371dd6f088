package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/yildizm/NewsLens/internal/classify/remote"
	"github.com/yildizm/NewsLens/internal/config"
	"github.com/yildizm/NewsLens/internal/formatter"
	"github.com/yildizm/NewsLens/internal/logger"
	"github.com/yildizm/NewsLens/internal/ui"
)

// newLogger creates the root logger for a command; diagnostics go to stderr
func newLogger(cmd *cobra.Command) *logger.Logger {
	log := logger.NewWithCallback("cli", isVerbose)
	log.SetOutput(cmd.ErrOrStderr())
	return log
}

// newBackend creates the HTTP client for the configured prediction backend
func newBackend(cfg *config.Config, log *logger.Logger) (*remote.Client, error) {
	rc := remote.DefaultConfig()
	rc.BaseURL = cfg.Server.BaseURL
	rc.Timeout = cfg.Server.Timeout

	client, err := remote.New(rc, log.WithComponent("remote"))
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

// setup loads configuration and builds the logger and backend client
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, *remote.Client, error) {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log := newLogger(cmd)
	client, err := newBackend(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug("using backend %s", client.BaseURL())
	return cfg, log, client, nil
}

// requestContext bounds a one-shot command by the configured server timeout
func requestContext(cmd *cobra.Command, cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, cfg.Server.Timeout)
}

// useColor resolves the configured color mode for stdout
func useColor(cfg *config.Config) bool {
	switch cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !ui.IsColorDisabled() && term.IsTerminal(os.Stdout.Fd())
	}
}

// getFormatter returns the formatter for the configured output format
func getFormatter(cfg *config.Config) formatter.Formatter {
	return formatter.Get(cfg.Output.DefaultFormat, useColor(cfg))
}

func writeOutput(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// openLogFile opens the log file used while the TUI owns the terminal
func openLogFile(path string) (*os.File, error) {
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	// #nosec G304 - path comes from the user's own configuration
	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Helper function to check if file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
