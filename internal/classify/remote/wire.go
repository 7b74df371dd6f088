package remote

import "github.com/yildizm/NewsLens/internal/classify"

// predictEnvelope is the body returned by POST /predict
type predictEnvelope struct {
	Success    bool                 `json:"success"`
	Prediction *classify.Prediction `json:"prediction,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// modelInfoEnvelope is the body returned by GET /model-info
type modelInfoEnvelope struct {
	Success   bool                `json:"success"`
	ModelInfo *classify.ModelInfo `json:"model_info,omitempty"`
	Error     string              `json:"error,omitempty"`
}
