package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/view"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatPrediction(headline string, result *classify.Result) ([]byte, error) {
	if result == nil || result.Prediction == nil {
		return nil, fmt.Errorf("no prediction to format")
	}
	pv := view.NewPredictionView(result.Prediction, 0, 0)

	var b strings.Builder
	b.WriteString("# Headline Classification\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "> %s\n\n", escapeMarkdown(headline))

	b.WriteString("## Prediction\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(&b, "| Category | **%s** |\n", escapeMarkdown(pv.Label))
	fmt.Fprintf(&b, "| Confidence | `%s` %s |\n", createConfidenceBar(result.Prediction.Confidence), pv.ConfidenceText)
	fmt.Fprintf(&b, "| Tier | %s |\n", pv.Tier)
	if result.RequestID != "" {
		fmt.Fprintf(&b, "| Request ID | `%s` |\n", result.RequestID)
	}
	b.WriteString("\n")

	if len(pv.Rows) > 0 {
		b.WriteString("## All Probabilities\n\n")
		b.WriteString("| # | Category | Probability |\n")
		b.WriteString("|---|----------|-------------|\n")
		for _, row := range pv.Rows {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", row.Index+1, escapeMarkdown(row.Label), row.PercentText)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Preprocessed Text\n\n")
	fmt.Fprintf(&b, "```\n%s\n```\n", pv.Preprocessed)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatModelInfo(info *classify.ModelInfo) ([]byte, error) {
	if info == nil {
		return nil, fmt.Errorf("no model information to format")
	}
	mv := view.NewModelInfoView(info)

	var b strings.Builder
	b.WriteString("# Model Information\n\n")

	b.WriteString("## Architecture\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	for _, field := range mv.Architecture {
		fmt.Fprintf(&b, "| %s | %s |\n", field.Name, escapeMarkdown(emptyOr(field.Value, "N/A")))
	}

	b.WriteString("\n## Categories\n\n")
	for _, category := range mv.Categories {
		fmt.Fprintf(&b, "- %s\n", escapeMarkdown(category))
	}

	if len(mv.Steps) > 0 {
		b.WriteString("\n## Preprocessing Steps\n\n")
		for _, step := range mv.Steps {
			fmt.Fprintf(&b, "%d. %s\n", step.Number, escapeMarkdown(step.Text))
		}
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatHealth(health *classify.Health) ([]byte, error) {
	if health == nil {
		return nil, fmt.Errorf("no health report to format")
	}

	var b strings.Builder
	b.WriteString("# Backend Health\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(&b, "| Verdict | %s |\n", healthLabel(health))
	fmt.Fprintf(&b, "| Status | %s |\n", emptyOr(health.Status, "unknown"))
	fmt.Fprintf(&b, "| Model Loaded | %t |\n", health.ModelLoaded)
	if health.Message != "" {
		fmt.Fprintf(&b, "| Message | %s |\n", escapeMarkdown(health.Message))
	}
	return []byte(b.String()), nil
}

// escapeMarkdown keeps user text from breaking table cells
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
