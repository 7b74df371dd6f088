package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/logger"
	"github.com/yildizm/NewsLens/internal/monitor"
)

var (
	predictEachLine bool
	predictMaxLines int
	predictSummary  bool
)

func newPredictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [headline|-]",
		Short: "Classify a headline",
		Long: `Classify a single headline and print the result.

If no headline is given, or the argument is "-", the headline is read from stdin.
With --each-line every non-empty stdin line is classified separately.

Examples:
  newslens predict "Senate passes bipartisan infrastructure bill"
  echo "Five morning habits for better sleep" | newslens predict -o json
  newslens predict --each-line --summary < headlines.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPredict,
	}

	cmd.Flags().BoolVar(&predictEachLine, "each-line", false, "classify every stdin line separately")
	cmd.Flags().IntVar(&predictMaxLines, "max-lines", 1000, "maximum lines to classify with --each-line")
	cmd.Flags().BoolVar(&predictSummary, "summary", false, "print a label and latency summary to stderr")

	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	headlines, truncated, err := readHeadlines(cmd.InOrStdin(), args, predictEachLine, predictMaxLines)
	if err != nil {
		return err
	}

	cfg, log, client, err := setup(cmd)
	if err != nil {
		return err
	}
	if truncated {
		log.Warn("stopped after %d lines (--max-lines); remaining input ignored", predictMaxLines)
	}
	out := getFormatter(cfg)
	tracker := monitor.NewTracker()

	failed := 0
	for _, headline := range headlines {
		// local validation never reaches the backend
		text, err := classify.Validate(headline)
		if err == nil {
			ctx, cancel := requestContext(cmd, cfg)
			var result *classify.Result
			result, err = client.Predict(ctx, text)
			cancel()

			if err == nil {
				tracker.RecordResult(result)
				data, ferr := out.FormatPrediction(text, result)
				if ferr != nil {
					return ferr
				}
				if werr := writeOutput(cmd.OutOrStdout(), data); werr != nil {
					return werr
				}
				continue
			}
		}

		tracker.RecordError(err)
		if len(headlines) == 1 {
			if serr := writeSummary(cmd, cfg.Output.DefaultFormat, tracker); serr != nil {
				log.Debug("failed to write summary: %v", serr)
			}
			return fmt.Errorf("%s", classify.UserMessage(err, classify.MsgPredictFailed))
		}
		failed++
		log.WarnWithFields("headline skipped", []logger.Field{
			logger.F("kind", classify.KindOf(err)),
			logger.Error(err),
		})
	}

	if err := writeSummary(cmd, cfg.Output.DefaultFormat, tracker); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d headlines could not be classified", failed, len(headlines))
	}
	return nil
}

// writeSummary prints the --summary report, if requested
func writeSummary(cmd *cobra.Command, format string, tracker *monitor.Tracker) error {
	if !predictSummary {
		return nil
	}
	return monitor.WriteReport(cmd.ErrOrStderr(), tracker.Summary(), format)
}

// readHeadlines returns the headlines named by args, reading stdin when
// there is no argument or the argument is "-". truncated reports non-empty
// lines left unread because of maxLines.
func readHeadlines(in io.Reader, args []string, eachLine bool, maxLines int) (lines []string, truncated bool, err error) {
	if len(args) == 1 && args[0] != "-" {
		return []string{args[0]}, false, nil
	}

	if !eachLine {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []string{string(data)}, false, nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024) // 1MB buffer

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(lines) >= maxLines {
			truncated = true
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, truncated, fmt.Errorf("scanner error: %w", err)
	}
	if len(lines) == 0 {
		return nil, false, fmt.Errorf("no headlines found on stdin")
	}
	return lines, truncated, nil
}
