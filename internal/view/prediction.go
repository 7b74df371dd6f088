package view

import (
	"fmt"
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
)

// PreprocessedPlaceholder is shown when the backend sent no preprocessed text
const PreprocessedPlaceholder = "N/A"

// RowStagger is the per-row reveal delay of the probability list
const RowStagger = 100 * time.Millisecond

// Tier is the colour band of the confidence bar
type Tier int

const (
	TierNegative Tier = iota
	TierCaution
	TierPositive
)

// Tier lower bounds, inclusive
const (
	PositiveFrom = 0.7
	CautionFrom  = 0.5
)

func (t Tier) String() string {
	switch t {
	case TierPositive:
		return "positive"
	case TierCaution:
		return "caution"
	default:
		return "negative"
	}
}

// TierFor returns the bar tier for a confidence value
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= PositiveFrom:
		return TierPositive
	case confidence >= CautionFrom:
		return TierCaution
	default:
		return TierNegative
	}
}

// ProbabilityRow is one entry of the rendered distribution
type ProbabilityRow struct {
	Index       int
	Label       string
	Fraction    float64
	PercentText string
	Delay       time.Duration
}

// PredictionView is everything the success view needs, computed without any
// rendering environment
type PredictionView struct {
	Label          string
	Percent        float64
	ConfidenceText string
	BarFraction    float64
	Tier           Tier
	Accent         Accent
	Rows           []ProbabilityRow
	Preprocessed   string
	ScrollIntoView bool
}

// NewPredictionView maps a prediction onto its view model. Rows keep the order
// of p.AllProbabilities. ScrollIntoView is set when width is below narrowWidth.
func NewPredictionView(p *classify.Prediction, width, narrowWidth int) PredictionView {
	if p == nil {
		return PredictionView{Preprocessed: PreprocessedPlaceholder}
	}

	rows := make([]ProbabilityRow, 0, len(p.AllProbabilities))
	for i, item := range p.AllProbabilities {
		rows = append(rows, ProbabilityRow{
			Index:       i,
			Label:       item.Label,
			Fraction:    Fraction(item.Probability),
			PercentText: FormatPercent(item.Probability) + "%",
			Delay:       time.Duration(i) * RowStagger,
		})
	}

	preprocessed, ok := p.Preprocessed()
	if !ok {
		preprocessed = PreprocessedPlaceholder
	}

	return PredictionView{
		Label:          p.Label,
		Percent:        Percent(p.Confidence),
		ConfidenceText: FormatPercent(p.Confidence) + "%",
		BarFraction:    Fraction(p.Confidence),
		Tier:           TierFor(p.Confidence),
		Accent:         AccentFor(p.Label),
		Rows:           rows,
		Preprocessed:   preprocessed,
		ScrollIntoView: width < narrowWidth,
	}
}

// CopyText is the clipboard form of a prediction
func CopyText(p *classify.Prediction) string {
	return fmt.Sprintf("Predicted Category: %s\nConfidence: %s%%", p.Label, FormatPercent(p.Confidence))
}
