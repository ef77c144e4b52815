package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLogRepo(t *testing.T) (*LogRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLogRepository(db)
	return repo, mock, db
}

func TestLogRepository_EnsureSchema(t *testing.T) {
	repo, mock, db := setupLogRepo(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS predictions .* timestamp TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogRepository_Insert(t *testing.T) {
	repo, mock, db := setupLogRepo(t)
	defer db.Close()

	t.Run("inserts subset of features", func(t *testing.T) {
		now := time.Now()
		f := domain.DefaultFeatures()
		f.Absences = 4

		mock.ExpectQuery(`INSERT INTO predictions`).
			WithArgs(10.0, 10.0, 2.0, 4.0, 12.34, "Pass").
			WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(7), now))

		entry, err := repo.Insert(context.Background(), f, &domain.PredictionResult{Category: "Pass", PredictedScore: 12.34})
		require.NoError(t, err)
		assert.Equal(t, int64(7), entry.ID)
		assert.Equal(t, now, entry.Timestamp)
		assert.Equal(t, "Pass", entry.Category)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO predictions`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Insert(context.Background(), domain.DefaultFeatures(), &domain.PredictionResult{Category: "Good"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert prediction")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogRepository_Recent(t *testing.T) {
	repo, mock, db := setupLogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "grade_period1", "grade_period2", "study_time", "absences",
		"prediction_score", "category", "timestamp",
	}).
		AddRow(int64(2), 15.0, 16.0, 3.0, 0.0, 17.1, "Excellent", now).
		AddRow(int64(1), 8.0, 9.0, 1.0, 12.0, 7.5, nil, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, grade_period1`).
		WithArgs(5).
		WillReturnRows(rows)

	got, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Excellent", got[0].Category)
	assert.Equal(t, "", got[1].Category)
	assert.Equal(t, 7.5, got[1].PredictionScore)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogRepository_PruneOlderThan(t *testing.T) {
	repo, mock, db := setupLogRepo(t)
	defer db.Close()

	colombo := time.FixedZone("UTC+5:30", 5*3600+30*60)
	cutoff := time.Date(2026, 4, 1, 8, 30, 0, 0, colombo)
	mock.ExpectExec(`DELETE FROM predictions WHERE timestamp < \$1`).
		WithArgs(time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PruneOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, mock.ExpectationsWereMet())
}
