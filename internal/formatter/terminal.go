package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/view"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatPrediction(headline string, result *classify.Result) ([]byte, error) {
	if result == nil || result.Prediction == nil {
		return nil, fmt.Errorf("no prediction to format")
	}
	pv := view.NewPredictionView(result.Prediction, 0, 0)

	var b strings.Builder
	f.writeHeader(&b, "Headline Classification")
	f.writeSummary(&b, headline, pv, result)
	f.writeProbabilities(&b, pv)
	f.writePreprocessed(&b, pv)

	return []byte(b.String()), nil
}

// writeSummary writes the predicted category with tree-style formatting
func (f *terminalFormatter) writeSummary(b *strings.Builder, headline string, pv view.PredictionView, result *classify.Result) {
	symbol := termfmt.GetEmoji("target", f.opts)
	if symbol == "" {
		symbol = "🎯" // Fallback
	}
	b.WriteString(symbol + " Prediction\n")

	items := []termfmt.TreeItem{
		{Label: "Headline", Value: headline},
		{Label: "Category", Value: pv.Label},
		{Label: "Confidence", Value: fmt.Sprintf("%s %s %s",
			termfmt.CreateConfidenceBar(pv.BarFraction, f.opts), pv.ConfidenceText, getTierEmoji(pv.Tier, f.opts))},
	}
	if result.RequestID != "" {
		items = append(items, termfmt.TreeItem{Label: "Request ID", Value: result.RequestID})
	}
	items[len(items)-1].Last = true

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeProbabilities writes the distribution in backend order
func (f *terminalFormatter) writeProbabilities(b *strings.Builder, pv view.PredictionView) {
	if len(pv.Rows) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " All Probabilities\n")

	width := 0
	for _, row := range pv.Rows {
		if n := len([]rune(row.Label)); n > width {
			width = n
		}
	}

	items := make([]termfmt.TreeItem, 0, len(pv.Rows))
	for i, row := range pv.Rows {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%-*s", width, row.Label),
			Value: fmt.Sprintf("%s %6s", termfmt.CreateConfidenceBar(row.Fraction, f.opts), row.PercentText),
			Last:  i == len(pv.Rows)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

func (f *terminalFormatter) writePreprocessed(b *strings.Builder, pv view.PredictionView) {
	symbol := termfmt.GetEmoji("summary", f.opts)
	if symbol == "" {
		symbol = "📝" // Fallback
	}
	fmt.Fprintf(b, "%s Preprocessed Text\n", symbol)
	b.WriteString(pv.Preprocessed + "\n")
}

func (f *terminalFormatter) FormatModelInfo(info *classify.ModelInfo) ([]byte, error) {
	if info == nil {
		return nil, fmt.Errorf("no model information to format")
	}
	mv := view.NewModelInfoView(info)

	var b strings.Builder
	f.writeHeader(&b, "Model Information")

	symbol := termfmt.GetEmoji("ai", f.opts)
	if symbol == "" {
		symbol = "🤖" // Fallback
	}
	b.WriteString(symbol + " Architecture\n")

	items := make([]termfmt.TreeItem, 0, len(mv.Architecture))
	for i, field := range mv.Architecture {
		items = append(items, termfmt.TreeItem{
			Label: field.Name,
			Value: emptyOr(field.Value, "N/A"),
			Last:  i == len(mv.Architecture)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	fmt.Fprintf(&b, "%s Categories (%d)\n", termfmt.GetEmoji("statistics", f.opts), len(mv.Categories))
	for _, category := range mv.Categories {
		b.WriteString("• " + category + "\n")
	}

	if len(mv.Steps) > 0 {
		fmt.Fprintf(&b, "\n%s Preprocessing Steps\n", termfmt.GetEmoji("help", f.opts))
		for _, step := range mv.Steps {
			fmt.Fprintf(&b, "%d. %s\n", step.Number, step.Text)
		}
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatHealth(health *classify.Health) ([]byte, error) {
	if health == nil {
		return nil, fmt.Errorf("no health report to format")
	}

	symbol := termfmt.GetEmoji("info", f.opts)
	if !health.Healthy() {
		symbol = termfmt.GetEmoji("error", f.opts)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Backend %s\n", symbol, healthLabel(health))

	items := []termfmt.TreeItem{
		{Label: "Status", Value: emptyOr(health.Status, "unknown")},
		{Label: "Model Loaded", Value: fmt.Sprintf("%t", health.ModelLoaded)},
	}
	if health.Message != "" {
		items = append(items, termfmt.TreeItem{Label: "Message", Value: health.Message})
	}
	if health.ModelInfo != nil && health.ModelInfo.ModelType != "" {
		items = append(items, termfmt.TreeItem{Label: "Model", Value: health.ModelInfo.ModelType})
	}
	items[len(items)-1].Last = true

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
	return []byte(b.String()), nil
}

// writeHeader writes a header box sized to the title
func (f *terminalFormatter) writeHeader(b *strings.Builder, header string) {
	headerLen := len([]rune(header))

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}
