package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/config"
	"github.com/yildizm/NewsLens/internal/formatter"
	"github.com/yildizm/NewsLens/internal/logger"
	"github.com/yildizm/NewsLens/internal/monitor"
	"github.com/yildizm/NewsLens/internal/view"
	"github.com/yildizm/go-logparser"
)

var (
	watchLevel     string
	watchFromStart bool
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Classify headlines appended to a file",
		Long: `Monitor a file for new lines and classify each one as it is written.

Lines are parsed as log entries (JSON, logfmt or plain text, auto-detected) and
the message of every entry is sent to the backend. Press Ctrl+C to stop watching;
a label and latency summary is printed to stderr on exit.

Examples:
  newslens watch headlines.log
  newslens watch --level info --from-start feed.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringVarP(&watchLevel, "level", "l", "", "only classify entries with this log level")
	cmd.Flags().BoolVar(&watchFromStart, "from-start", false, "classify existing lines before watching")

	return cmd
}

// headlineWatcher classifies the messages of parsed log entries
type headlineWatcher struct {
	backend classify.Backend
	format  formatter.Formatter
	compact bool
	out     io.Writer
	log     *logger.Logger
	timeout time.Duration
	level   string

	parser  logparser.Parser
	tracker *monitor.Tracker

	// pending holds a trailing line the writer has not terminated yet
	pending string
}

func newHeadlineWatcher(cfg *config.Config, backend classify.Backend, out io.Writer, log *logger.Logger) *headlineWatcher {
	return &headlineWatcher{
		backend: backend,
		format:  formatter.Get(cfg.Output.DefaultFormat, useColor(cfg)),
		compact: cfg.Output.DefaultFormat == "" || cfg.Output.DefaultFormat == "text",
		out:     out,
		log:     log,
		timeout: cfg.Server.Timeout,
		level:   strings.ToLower(strings.TrimSpace(watchLevel)),
		tracker: monitor.NewTracker(),
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, log, client, err := setup(cmd)
	if err != nil {
		return err
	}

	// Setup file watcher
	watcher, file, cleanup, err := setupFileWatcher(filename, log)
	if err != nil {
		return err
	}
	defer cleanup()

	hw := newHeadlineWatcher(cfg, client, cmd.OutOrStdout(), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if watchFromStart {
		if err := hw.processNewLines(ctx, file); err != nil {
			log.Warn("failed to process existing lines: %v", err)
		}
	}

	err = hw.runWatchLoop(ctx, watcher, file)

	if summary := hw.tracker.Summary(); summary.Total() > 0 {
		if rerr := monitor.WriteReport(cmd.ErrOrStderr(), summary, "text"); rerr != nil {
			log.Debug("failed to write summary: %v", rerr)
		}
	}
	return err
}

// processNewLines reads everything appended since the last read. Only
// newline-terminated lines are classified; a partial tail waits for the next write.
func (w *headlineWatcher) processNewLines(ctx context.Context, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	buffered := w.pending + string(data)
	end := strings.LastIndexByte(buffered, '\n')
	if end < 0 {
		w.pending = buffered
		return nil
	}
	w.pending = buffered[end+1:]

	var newLines []string
	for _, line := range strings.Split(buffered[:end], "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			newLines = append(newLines, line)
		}
	}

	return w.classifyLines(ctx, newLines)
}

// classifyLines parses lines as log entries and classifies each message
func (w *headlineWatcher) classifyLines(ctx context.Context, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	// Auto-detect parser on first lines if not already detected
	if w.parser == nil {
		w.parser = logparser.New()
		w.log.Debug("created auto-detecting parser")
	}

	entries, err := w.parser.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		w.log.Debug("failed to parse lines: %v", err)
		return nil
	}

	for i := range entries {
		entry := &entries[i]
		if w.level != "" && strings.ToLower(entry.Level) != w.level {
			continue
		}
		if err := w.classifyEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (w *headlineWatcher) classifyEntry(ctx context.Context, entry *logparser.LogEntry) error {
	text, err := classify.Validate(entry.Message)
	if err != nil {
		w.tracker.RecordError(err)
		w.log.Debug("skipping entry: %s", classify.UserMessage(err, classify.MsgUnknownError))
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	result, err := w.backend.Predict(reqCtx, text)
	if err != nil {
		w.tracker.RecordError(err)
		w.log.WarnWithFields("classification failed", []logger.Field{
			logger.F("kind", classify.KindOf(err)),
			logger.Error(err),
		})
		return nil
	}
	w.tracker.RecordResult(result)

	if w.compact {
		return w.writeCompact(entry, text, result)
	}

	data, err := w.format.FormatPrediction(text, result)
	if err != nil {
		return err
	}
	return writeOutput(w.out, data)
}

// writeCompact prints one line per classified entry
func (w *headlineWatcher) writeCompact(entry *logparser.LogEntry, text string, result *classify.Result) error {
	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	p := result.Prediction
	_, err := fmt.Fprintf(w.out, "[%s] %-16s %6s%%  %s\n",
		timestamp.Format("15:04:05"), p.Label, view.FormatPercent(p.Confidence), text)
	return err
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

// cleanupFile safely closes file with error logging
func cleanupFile(file *os.File, log *logger.Logger) {
	if err := file.Close(); err != nil {
		log.Debug("failed to close file: %v", err)
	}
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string, log *logger.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher, log)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// openWatchFile opens the file, positioned at its end unless --from-start is set
func openWatchFile(filename string, log *logger.Logger) (*os.File, error) {
	// #nosec G304 - path is validated by caller
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if !watchFromStart {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			cleanupFile(file, log)
			return nil, fmt.Errorf("failed to seek to end of file: %w", err)
		}
	}

	return file, nil
}

// setupFileWatcher creates and configures file watcher
func setupFileWatcher(filename string, log *logger.Logger) (*fsnotify.Watcher, *os.File, func(), error) {
	// Validate file path for security
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	log.Info("watching file: %s (press Ctrl+C to stop)", filename)

	watcher, err := createWatcher(filename, log)
	if err != nil {
		return nil, nil, nil, err
	}

	file, err := openWatchFile(filename, log)
	if err != nil {
		cleanupWatcher(watcher, log)
		return nil, nil, nil, err
	}

	cleanup := func() {
		cleanupWatcher(watcher, log)
		cleanupFile(file, log)
	}

	return watcher, file, cleanup, nil
}

// runWatchLoop runs the main watch loop with signal handling
func (w *headlineWatcher) runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, file *os.File) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			w.log.Info("received interrupt signal, stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			// Only process write events
			if event.Op&fsnotify.Write == fsnotify.Write {
				if err := w.processNewLines(ctx, file); err != nil {
					w.log.Warn("error processing new lines: %v", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn("watcher error: %v", err)
		}
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// For watch operations, ensure the file exists and is a regular file
	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
