package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/view"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// PredictionOutput is the JSON form of a classified headline
type PredictionOutput struct {
	Headline         string              `json:"headline"`
	Label            string              `json:"label"`
	Confidence       float64             `json:"confidence"`
	ConfidenceText   string              `json:"confidence_text"`
	Tier             string              `json:"tier"`
	Probabilities    []ProbabilityOutput `json:"all_probabilities"`
	PreprocessedText *string             `json:"preprocessed_text"`
	RequestID        string              `json:"request_id,omitempty"`
	DurationMS       int64               `json:"duration_ms"`
}

// ProbabilityOutput is one entry of the distribution
type ProbabilityOutput struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
}

// HealthOutput adds a one-word verdict to the backend's health report
type HealthOutput struct {
	*classify.Health
	Healthy bool `json:"healthy"`
}

func (f *jsonFormatter) FormatPrediction(headline string, result *classify.Result) ([]byte, error) {
	if result == nil || result.Prediction == nil {
		return nil, fmt.Errorf("no prediction to format")
	}
	p := result.Prediction
	pv := view.NewPredictionView(p, 0, 0)

	probabilities := make([]ProbabilityOutput, 0, len(p.AllProbabilities))
	for i, item := range p.AllProbabilities {
		probabilities = append(probabilities, ProbabilityOutput{
			Label:       item.Label,
			Probability: item.Probability,
			Percent:     pv.Rows[i].PercentText,
		})
	}

	output := &PredictionOutput{
		Headline:         headline,
		Label:            p.Label,
		Confidence:       p.Confidence,
		ConfidenceText:   pv.ConfidenceText,
		Tier:             pv.Tier.String(),
		Probabilities:    probabilities,
		PreprocessedText: p.PreprocessedText,
		RequestID:        result.RequestID,
		DurationMS:       result.Duration.Milliseconds(),
	}

	return marshal(output)
}

func (f *jsonFormatter) FormatModelInfo(info *classify.ModelInfo) ([]byte, error) {
	if info == nil {
		return nil, fmt.Errorf("no model information to format")
	}
	return marshal(info)
}

func (f *jsonFormatter) FormatHealth(health *classify.Health) ([]byte, error) {
	if health == nil {
		return nil, fmt.Errorf("no health report to format")
	}
	return marshal(&HealthOutput{Health: health, Healthy: health.Healthy()})
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}
