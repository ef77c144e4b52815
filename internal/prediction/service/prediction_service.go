package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"go.uber.org/zap"
)

// Predictor calls the external model service
type Predictor interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)
}

// ResultStore keeps one result per browser session
type ResultStore interface {
	Save(ctx context.Context, sessionID string, result *domain.PredictionResult) error
	Get(ctx context.Context, sessionID string) (*domain.PredictionResult, error)
	AcquireSubmission(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmission(ctx context.Context, sessionID string) error
}

// PredictionLog persists submitted predictions for later inspection
type PredictionLog interface {
	Insert(ctx context.Context, f domain.Features, result *domain.PredictionResult) (*domain.LoggedPrediction, error)
	Recent(ctx context.Context, limit int) ([]domain.LoggedPrediction, error)
}

// PredictionService handles the submit/result flow
type PredictionService struct {
	predictor Predictor
	results   ResultStore
	log       PredictionLog
	logger    *zap.Logger
}

// NewPredictionService creates a new PredictionService. predictionLog may be nil.
func NewPredictionService(predictor Predictor, results ResultStore, predictionLog PredictionLog, logger *zap.Logger) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionService{
		predictor: predictor,
		results:   results,
		log:       predictionLog,
		logger:    logger,
	}
}

// Submit sends the features to the model and stores the result for the session
func (s *PredictionService) Submit(ctx context.Context, sessionID string, f domain.Features) (*domain.PredictionResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	acquired, err := s.results.AcquireSubmission(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.ErrSubmissionInProgress
	}

	logger := s.logger.With(
		zap.String("session_id", sessionID),
		zap.String("request_id", middleware.GetRequestID(ctx)),
	)

	defer func() {
		// Release even if the request context is already gone.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.results.ReleaseSubmission(releaseCtx, sessionID); err != nil {
			logger.Warn("release submission marker", zap.Error(err))
		}
	}()

	start := time.Now()
	result, err := s.predictor.Predict(ctx, domain.BuildRequest(f))
	if err != nil {
		logPredictError(logger, err)
		return nil, err
	}

	if err := result.Validate(); err != nil {
		logger.Warn("prediction service returned unusable result", zap.Error(err))
		return nil, err
	}

	if err := s.results.Save(ctx, sessionID, result); err != nil {
		return nil, fmt.Errorf("store prediction: %w", err)
	}

	logger.Info("prediction stored",
		zap.String("category", result.Category),
		zap.Float64("predicted_score", result.PredictedScore),
		zap.Duration("latency", time.Since(start)),
	)

	if s.log != nil {
		if _, err := s.log.Insert(ctx, f, result); err != nil {
			logger.Error("prediction log insert failed", zap.Error(err))
		}
	}

	return result, nil
}

// LatestResult returns the session's most recent result
func (s *PredictionService) LatestResult(ctx context.Context, sessionID string) (*domain.PredictionResult, error) {
	return s.results.Get(ctx, sessionID)
}

// RecentPredictions lists logged predictions. It is empty when logging is off.
func (s *PredictionService) RecentPredictions(ctx context.Context, limit int) ([]domain.LoggedPrediction, error) {
	if s.log == nil {
		return []domain.LoggedPrediction{}, nil
	}
	return s.log.Recent(ctx, limit)
}

// LoggingEnabled reports whether predictions are persisted
func (s *PredictionService) LoggingEnabled() bool {
	return s.log != nil
}

func logPredictError(logger *zap.Logger, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &upstream):
		logger.Warn("prediction service returned error",
			zap.Int("status", upstream.StatusCode),
			zap.String("detail", upstream.Detail),
		)
	case errors.Is(err, domain.ErrPredictorUnreachable):
		logger.Warn("prediction service unreachable", zap.Error(err))
	default:
		logger.Warn("prediction failed", zap.Error(err))
	}
}
