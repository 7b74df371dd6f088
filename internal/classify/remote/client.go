package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/logger"
)

const (
	predictPath   = "/predict"
	modelInfoPath = "/model-info"
	healthPath    = "/health"

	requestIDHeader = "X-Request-ID"
)

// Client talks to the prediction backend over HTTP
type Client struct {
	config  *Config
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

// New creates a new backend client
func New(config *Config, log *logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewWithCallback("remote", nil)
	}

	return &Client{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		log:     log,
	}, nil
}

// BaseURL returns the backend root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict sends text to POST /predict. Exactly one request is made.
func (c *Client) Predict(ctx context.Context, text string) (*classify.Result, error) {
	started := time.Now()
	requestID := uuid.NewString()

	body, err := json.Marshal(classify.PredictionRequest{Text: text})
	if err != nil {
		return nil, classify.NewErrorWithCause(classify.KindTransport, classify.MsgPredictFailed,
			fmt.Errorf("failed to marshal request: %w", err))
	}

	status, data, err := c.do(ctx, http.MethodPost, predictPath, requestID, body)
	if err != nil {
		c.log.WarnWithFields("prediction request failed", []logger.Field{
			logger.RequestID(requestID), logger.Error(err),
		})
		return nil, classify.NewErrorWithCause(classify.KindTransport, classify.MsgPredictFailed, err)
	}

	var envelope predictEnvelope
	decodeErr := json.Unmarshal(data, &envelope)

	fields := []logger.Field{logger.RequestID(requestID), logger.Status(status), logger.Duration(time.Since(started))}

	if !isSuccessStatus(status) {
		// an unreadable error body still counts as a rejection by the server
		rejection := classify.NewRejection(status, envelope.Error, classify.MsgPredictRejected)
		rejection.Cause = decodeErr
		c.log.WarnWithFields("prediction rejected: %s", fields, rejection.Message)
		return nil, rejection
	}

	if decodeErr != nil {
		c.log.WarnWithFields("malformed prediction response", append(fields, logger.Error(decodeErr)))
		return nil, classify.NewErrorWithCause(classify.KindTransport, classify.MsgPredictFailed,
			fmt.Errorf("failed to decode response: %w", decodeErr))
	}

	if !envelope.Success {
		rejection := classify.NewRejection(status, envelope.Error, classify.MsgUnknownError)
		c.log.WarnWithFields("prediction unsuccessful: %s", fields, rejection.Message)
		return nil, rejection
	}

	if envelope.Prediction == nil {
		c.log.WarnWithFields("prediction missing from successful response", fields)
		return nil, classify.NewErrorWithCause(classify.KindTransport, classify.MsgPredictFailed,
			fmt.Errorf("response has success=true but no prediction"))
	}

	c.log.InfoWithFields("prediction %s (%.1f%%)", fields, envelope.Prediction.Label, envelope.Prediction.Confidence*100)

	return &classify.Result{
		Prediction: envelope.Prediction,
		RequestID:  requestID,
		Duration:   time.Since(started),
	}, nil
}

// ModelInfo fetches GET /model-info
func (c *Client) ModelInfo(ctx context.Context) (*classify.ModelInfo, error) {
	requestID := uuid.NewString()

	status, data, err := c.do(ctx, http.MethodGet, modelInfoPath, requestID, nil)
	if err != nil {
		c.log.WarnWithFields("model info request failed", []logger.Field{
			logger.RequestID(requestID), logger.Error(err),
		})
		return nil, classify.NewErrorWithCause(classify.KindTransport,
			"Error loading model information: "+err.Error(), err)
	}

	var envelope modelInfoEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, classify.NewErrorWithCause(classify.KindTransport,
			"Error loading model information: malformed response", err)
	}

	if !isSuccessStatus(status) || !envelope.Success || envelope.ModelInfo == nil {
		c.log.WarnWithFields("model info unavailable", []logger.Field{
			logger.RequestID(requestID), logger.Status(status), logger.F("backend_error", envelope.Error),
		})
		return nil, &classify.Error{
			Kind:       classify.KindBackendRejection,
			Message:    classify.MsgModelInfoFailed,
			StatusCode: status,
		}
	}

	return envelope.ModelInfo, nil
}

// Health fetches GET /health. The backend answers 500 with a body when the
// model failed to load, so the body is decoded for any status.
func (c *Client) Health(ctx context.Context) (*classify.Health, error) {
	requestID := uuid.NewString()

	status, data, err := c.do(ctx, http.MethodGet, healthPath, requestID, nil)
	if err != nil {
		return nil, classify.NewErrorWithCause(classify.KindTransport, "backend unreachable", err)
	}

	var health classify.Health
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, &classify.Error{
			Kind:       classify.KindTransport,
			Message:    "malformed health response",
			StatusCode: status,
			Cause:      err,
		}
	}

	c.log.DebugWithFields("health: %s", []logger.Field{logger.Status(status)}, health.Status)
	return &health, nil
}

// do performs a single request and returns the status code and body
func (c *Client) do(ctx context.Context, method, path, requestID string, body []byte) (int, []byte, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	c.log.DebugWithFields("%s %s", []logger.Field{logger.RequestID(requestID)}, method, path)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Debug("failed to close response body: %v", cerr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, data, nil
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

var _ classify.Backend = (*Client)(nil)
