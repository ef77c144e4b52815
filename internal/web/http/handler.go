package http

import (
	"context"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// PredictionService is the part of the prediction service the pages use
type PredictionService interface {
	Submit(ctx context.Context, sessionID string, f domain.Features) (*domain.PredictionResult, error)
	LatestResult(ctx context.Context, sessionID string) (*domain.PredictionResult, error)
}

// Handler serves the landing, input and results pages
type Handler struct {
	predictions PredictionService
	logger      *zap.Logger
}

// New creates a new Handler
func New(predictions PredictionService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		predictions: predictions,
		logger:      logger,
	}
}

func render(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
