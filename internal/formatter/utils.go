package formatter

import (
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/view"
	"github.com/yildizm/go-termfmt"
)

// getTierEmoji returns the indicator for a confidence tier using go-termfmt
func getTierEmoji(tier view.Tier, opts *termfmt.TerminalOptions) string {
	switch tier {
	case view.TierPositive:
		return termfmt.GetEmoji("success", opts)
	case view.TierCaution:
		return termfmt.GetEmoji("warning", opts)
	default:
		return termfmt.GetEmoji("error", opts)
	}
}

// createConfidenceBar creates ASCII confidence bar using go-termfmt
func createConfidenceBar(confidence float64) string {
	opts := termfmt.DefaultOptions()
	return termfmt.CreateConfidenceBar(view.Fraction(confidence), opts)
}

// healthLabel summarises a health report in a few words
func healthLabel(h *classify.Health) string {
	switch {
	case h == nil:
		return "unknown"
	case h.Healthy():
		return "healthy"
	case !h.ModelLoaded:
		return "model not loaded"
	case h.Status != "":
		return h.Status
	default:
		return "unhealthy"
	}
}

func emptyOr(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
