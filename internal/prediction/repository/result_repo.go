package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "predict:session:" // predict:session:{session_id}:...
	resultKeySuffix  = ":result"
	inflightSuffix   = ":inflight"
)

// ResultRepository keeps the latest prediction of each browser session in Redis
type ResultRepository struct {
	client      *redis.Client
	sessionTTL  time.Duration
	inflightTTL time.Duration
}

// NewResultRepository creates a new ResultRepository. inflightTTL bounds how
// long a crashed submission can block the session.
func NewResultRepository(client *redis.Client, sessionTTL, inflightTTL time.Duration) *ResultRepository {
	return &ResultRepository{
		client:      client,
		sessionTTL:  sessionTTL,
		inflightTTL: inflightTTL,
	}
}

// Save overwrites the session's stored result
func (r *ResultRepository) Save(ctx context.Context, sessionID string, result *domain.PredictionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := r.client.Set(ctx, r.resultKey(sessionID), data, r.sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Get returns the session's stored result without removing it
func (r *ResultRepository) Get(ctx context.Context, sessionID string) (*domain.PredictionResult, error) {
	data, err := r.client.Get(ctx, r.resultKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result domain.PredictionResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}

// AcquireSubmission marks the session busy. It reports false when another
// submission already holds the marker.
func (r *ResultRepository) AcquireSubmission(ctx context.Context, sessionID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.inflightKey(sessionID), time.Now().UTC().Format(time.RFC3339Nano), r.inflightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submission marker: %w", err)
	}
	return ok, nil
}

// ReleaseSubmission clears the busy marker
func (r *ResultRepository) ReleaseSubmission(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.inflightKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to release submission marker: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (r *ResultRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *ResultRepository) resultKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + resultKeySuffix
}

func (r *ResultRepository) inflightKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + inflightSuffix
}
