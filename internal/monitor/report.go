package monitor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteReport renders a summary as text, or as JSON when format is "json"
func WriteReport(w io.Writer, s Summary, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Classified %d of %d headlines in %s", s.Classified, s.Total(), ms(s.Elapsed))
	if s.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", s.Failed)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", s.Skipped)
	}
	b.WriteString("\n")

	if s.Classified > 0 {
		fmt.Fprintf(&b, "Latency: min %s, avg %s, p95 %s, max %s\n",
			ms(s.MinLatency), ms(s.AvgLatency), ms(s.P95Latency), ms(s.MaxLatency))
	}

	width := 0
	for _, lc := range s.Labels {
		if len(lc.Label) > width {
			width = len(lc.Label)
		}
	}
	for _, lc := range s.Labels {
		share := float64(lc.Count) / float64(s.Classified) * 100
		fmt.Fprintf(&b, "  %-*s %4d  %5.1f%%\n", width, lc.Label, lc.Count, share)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func ms(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
