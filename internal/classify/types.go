package classify

import "time"

// MaxTextLength is the largest headline, in characters, accepted for classification
const MaxTextLength = 5000

// PredictionRequest is the body sent to the prediction endpoint
type PredictionRequest struct {
	Text string `json:"text"`
}

// LabelProbability is one entry of a prediction's probability distribution
type LabelProbability struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Prediction is the classifier output for a single headline.
// AllProbabilities keeps the order the backend returned.
type Prediction struct {
	Label            string             `json:"label"`
	Confidence       float64            `json:"confidence"`
	AllProbabilities []LabelProbability `json:"all_probabilities"`
	PreprocessedText *string            `json:"preprocessed_text,omitempty"`
}

// Preprocessed returns the preprocessed text and whether the backend sent one
func (p *Prediction) Preprocessed() (string, bool) {
	if p == nil || p.PreprocessedText == nil || *p.PreprocessedText == "" {
		return "", false
	}
	return *p.PreprocessedText, true
}

// ModelInfo describes the model served by the backend
type ModelInfo struct {
	ModelType          string   `json:"model_type"`
	Vectorizer         string   `json:"vectorizer"`
	Classifier         string   `json:"classifier"`
	NgramRange         string   `json:"ngram_range"`
	Categories         []string `json:"categories"`
	PreprocessingSteps []string `json:"preprocessing_steps"`
}

// Health is the backend health report
type Health struct {
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	ModelLoaded bool       `json:"model_loaded"`
	ModelInfo   *ModelInfo `json:"model_info,omitempty"`
}

// Healthy reports whether the backend is up with a model loaded
func (h *Health) Healthy() bool {
	return h != nil && h.Status == "healthy" && h.ModelLoaded
}

// Result pairs a prediction with request bookkeeping used for logging and output
type Result struct {
	Prediction *Prediction
	RequestID  string
	Duration   time.Duration
}
