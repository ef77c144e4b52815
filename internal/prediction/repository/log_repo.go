package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
)

const createPredictionsTable = `
	CREATE TABLE IF NOT EXISTS predictions (
		id SERIAL PRIMARY KEY,
		grade_period1 REAL,
		grade_period2 REAL,
		study_time REAL,
		absences REAL,
		prediction_score REAL,
		category VARCHAR(50),
		timestamp TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)
`

// LogRepository handles PostgreSQL operations for the prediction log
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

// EnsureSchema creates the predictions table if it does not exist
func (r *LogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPredictionsTable); err != nil {
		return fmt.Errorf("failed to create predictions table: %w", err)
	}
	return nil
}

// Insert records a subset of the submitted features with the returned score
func (r *LogRepository) Insert(ctx context.Context, f domain.Features, result *domain.PredictionResult) (*domain.LoggedPrediction, error) {
	query := `
		INSERT INTO predictions (
			grade_period1, grade_period2, study_time, absences,
			prediction_score, category
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, timestamp
	`

	entry := &domain.LoggedPrediction{
		GradePeriod1:    float64(f.GradePeriod1),
		GradePeriod2:    float64(f.GradePeriod2),
		StudyTime:       float64(f.StudyTime),
		Absences:        float64(f.Absences),
		PredictionScore: result.PredictedScore,
		Category:        result.Category,
	}

	err := r.db.QueryRowContext(
		ctx,
		query,
		entry.GradePeriod1,
		entry.GradePeriod2,
		entry.StudyTime,
		entry.Absences,
		entry.PredictionScore,
		entry.Category,
	).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prediction: %w", err)
	}

	return entry, nil
}

// Recent returns the newest logged predictions first
func (r *LogRepository) Recent(ctx context.Context, limit int) ([]domain.LoggedPrediction, error) {
	query := `
		SELECT id, grade_period1, grade_period2, study_time, absences,
		       prediction_score, category, timestamp
		FROM predictions
		ORDER BY timestamp DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LoggedPrediction, 0, limit)
	for rows.Next() {
		var p domain.LoggedPrediction
		var category sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.GradePeriod1,
			&p.GradePeriod2,
			&p.StudyTime,
			&p.Absences,
			&p.PredictionScore,
			&category,
			&p.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		p.Category = category.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}

	return out, nil
}

// PruneOlderThan deletes log rows written before cutoff
func (r *LogRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE timestamp < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune predictions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned predictions: %w", err)
	}
	return n, nil
}

// Ping checks the database connection
func (r *LogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
