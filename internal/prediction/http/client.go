package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"golang.org/x/time/rate"
)

const predictPath = "/predict"

// PredictorClient handles communication with the external model service
type PredictorClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewPredictorClient creates a new client. A nil limiter disables throttling.
func NewPredictorClient(baseURL string, timeout time.Duration, limiter *rate.Limiter) *PredictorClient {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &PredictorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// Predict sends one feature vector to the model service. There is no retry.
func (c *PredictorClient) Predict(ctx context.Context, reqBody domain.PredictionRequest) (*domain.PredictionResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPredictorUnreachable, err)
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + predictPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPredictorUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrPredictorUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(body),
		}
	}

	var result domain.PredictionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResult, err)
	}

	return &result, nil
}

// errorDetail pulls a string "detail" out of an error body. Validation
// errors from the service carry a list there, which gets the generic label.
func errorDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return domain.GenericUpstreamDetail
	}

	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err != nil || strings.TrimSpace(detail) == "" {
		return domain.GenericUpstreamDetail
	}
	return detail
}
