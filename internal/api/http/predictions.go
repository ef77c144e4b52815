package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type RecentLister interface {
	RecentPredictions(ctx context.Context, limit int) ([]domain.LoggedPrediction, error)
	LoggingEnabled() bool
}

type PredictionsHandler struct {
	predictions RecentLister
	logger      *zap.Logger
}

func NewPredictionsHandler(predictions RecentLister, logger *zap.Logger) *PredictionsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionsHandler{predictions: predictions, logger: logger}
}

// Recent lists the newest logged predictions, newest first.
func (h *PredictionsHandler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxRecentLimit)
	}

	items, err := h.predictions.RecentPredictions(c.Request.Context(), limit)
	if err != nil {
		h.logger.Warn("list recent predictions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list predictions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logging_enabled": h.predictions.LoggingEnabled(),
		"count":           len(items),
		"predictions":     items,
	})
}

func (h *PredictionsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/predictions/recent", h.Recent)
}
