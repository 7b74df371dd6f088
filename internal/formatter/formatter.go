package formatter

import (
	"strings"

	"github.com/yildizm/NewsLens/internal/classify"
)

// Formatter defines the interface for one-shot output formatting
type Formatter interface {
	FormatPrediction(headline string, result *classify.Result) ([]byte, error)
	FormatModelInfo(info *classify.ModelInfo) ([]byte, error)
	FormatHealth(health *classify.Health) ([]byte, error)
}

// Get returns the formatter for format. Unknown formats fall back to text.
func Get(format string, color bool) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return NewJSON()
	case "markdown", "md":
		return NewMarkdown()
	default:
		return NewTerminal(color)
	}
}
