package domain

import (
	"fmt"
	"math"
	"strings"
)

// PredictionResult is what the model service returns on success.
type PredictionResult struct {
	Category       string  `json:"category"`
	PredictedScore float64 `json:"predicted_score"`
	Detail         string  `json:"detail"`
}

// Validate rejects results that cannot be rendered.
func (r *PredictionResult) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty body", ErrMalformedResult)
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrMalformedResult)
	}
	if math.IsNaN(r.PredictedScore) || math.IsInf(r.PredictedScore, 0) {
		return fmt.Errorf("%w: score is not a finite number", ErrMalformedResult)
	}
	return nil
}
