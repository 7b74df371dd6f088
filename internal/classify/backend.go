package classify

import "context"

// Backend is the prediction service as seen by the rest of the application
type Backend interface {
	// Predict classifies already-validated text with a single request
	Predict(ctx context.Context, text string) (*Result, error)

	// ModelInfo fetches static model metadata
	ModelInfo(ctx context.Context) (*ModelInfo, error)

	// Health fetches the backend health report
	Health(ctx context.Context) (*Health, error)
}
