package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeLister struct {
	items     []domain.LoggedPrediction
	err       error
	enabled   bool
	lastLimit int
}

func (f *fakeLister) RecentPredictions(_ context.Context, limit int) ([]domain.LoggedPrediction, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeLister) LoggingEnabled() bool { return f.enabled }

type recentResponse struct {
	LoggingEnabled bool                      `json:"logging_enabled"`
	Count          int                       `json:"count"`
	Predictions    []domain.LoggedPrediction `json:"predictions"`
}

func serveRecent(t *testing.T, lister *fakeLister, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewPredictionsHandler(lister, zaptest.NewLogger(t)).RegisterRoutes(r.Group("/api/v1"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/predictions/recent"+query, nil))
	return rr
}

func TestRecent_ReturnsItems(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	lister := &fakeLister{
		enabled: true,
		items: []domain.LoggedPrediction{
			{ID: 2, GradePeriod1: 12, GradePeriod2: 14, StudyTime: 3, Absences: 5, PredictionScore: 15.5, Category: "Excellent", Timestamp: ts},
		},
	}

	rr := serveRecent(t, lister, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, defaultRecentLimit, lister.lastLimit)

	var resp recentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.LoggingEnabled)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Predictions, 1)
	assert.Equal(t, int64(2), resp.Predictions[0].ID)
	assert.Equal(t, "Excellent", resp.Predictions[0].Category)
	assert.True(t, ts.Equal(resp.Predictions[0].Timestamp))
}

func TestRecent_Limit(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		lister := &fakeLister{}
		rr := serveRecent(t, lister, "?limit=5")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 5, lister.lastLimit)
	})

	t.Run("capped", func(t *testing.T) {
		lister := &fakeLister{}
		rr := serveRecent(t, lister, "?limit=1000")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, maxRecentLimit, lister.lastLimit)
	})

	for _, bad := range []string{"?limit=0", "?limit=-3", "?limit=ten"} {
		t.Run(bad, func(t *testing.T) {
			lister := &fakeLister{}
			rr := serveRecent(t, lister, bad)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, lister.lastLimit)
		})
	}
}

func TestRecent_LoggingDisabled(t *testing.T) {
	rr := serveRecent(t, &fakeLister{items: []domain.LoggedPrediction{}}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"logging_enabled":false,"count":0,"predictions":[]}`, rr.Body.String())
}

func TestRecent_StoreError(t *testing.T) {
	rr := serveRecent(t, &fakeLister{enabled: true, err: errors.New("db gone")}, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db gone")
}
