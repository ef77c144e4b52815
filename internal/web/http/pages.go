package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/session"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/web/views"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgUnreachable  = "Could not connect to the Prediction Server. Please ensure the backend is running!"
	msgInProgress   = "A prediction is already in progress. Please wait for it to finish."
	msgInvalidInput = "Please correct the highlighted fields."
	msgFailedPrefix = "Prediction Failed: "
	msgBadResponse  = "the prediction server returned an unexpected response"
)

// Landing renders the landing page
func (h *Handler) Landing(c *gin.Context) {
	render(c, http.StatusOK, views.LandingPage())
}

// PredictionForm renders the input form with default values
func (h *Handler) PredictionForm(c *gin.Context) {
	render(c, http.StatusOK, views.PredictionFormPage(views.FormState{
		Values: domain.DefaultFeatures(),
	}))
}

// SubmitPrediction runs one prediction and redirects to the results page.
// Every failure re-renders the form with the submitted values.
func (h *Handler) SubmitPrediction(c *gin.Context) {
	f, fieldErrors := parseFeatures(c)
	if len(fieldErrors) > 0 {
		h.renderFormError(c, http.StatusUnprocessableEntity, f, msgInvalidInput, fieldErrors)
		return
	}

	_, err := h.predictions.Submit(c.Request.Context(), session.ID(c), f)
	if err == nil {
		seeOther(c, "/results")
		return
	}

	var verr *domain.ValidationError
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &verr):
		fe := make(map[string]string, len(verr.Fields))
		for _, field := range verr.Fields {
			fe[field.Field] = field.Message
		}
		h.renderFormError(c, http.StatusUnprocessableEntity, f, msgInvalidInput, fe)
	case errors.Is(err, domain.ErrSubmissionInProgress):
		h.renderFormError(c, http.StatusConflict, f, msgInProgress, nil)
	case errors.As(err, &upstream):
		h.renderFormError(c, http.StatusBadGateway, f, msgFailedPrefix+upstream.Detail, nil)
	case errors.Is(err, domain.ErrPredictorUnreachable):
		h.renderFormError(c, http.StatusServiceUnavailable, f, msgUnreachable, nil)
	case errors.Is(err, domain.ErrMalformedResult):
		h.renderFormError(c, http.StatusBadGateway, f, msgFailedPrefix+msgBadResponse, nil)
	default:
		h.logger.Error("prediction submit failed",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.Error(err),
		)
		h.renderFormError(c, http.StatusInternalServerError, f, msgFailedPrefix+domain.GenericUpstreamDetail, nil)
	}
}

// Results renders the session's latest prediction, or sends the user back
// to the form when there is none
func (h *Handler) Results(c *gin.Context) {
	result, err := h.predictions.LatestResult(c.Request.Context(), session.ID(c))
	if errors.Is(err, domain.ErrResultNotFound) {
		seeOther(c, "/predict")
		return
	}
	if err != nil {
		h.logger.Error("load prediction result",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Header("Cache-Control", "no-store")
	render(c, http.StatusOK, views.ResultsPage(result))
}

func (h *Handler) renderFormError(c *gin.Context, status int, f domain.Features, msg string, fieldErrors map[string]string) {
	render(c, status, views.PredictionFormPage(views.FormState{
		Values:      f,
		Notice:      &views.Notice{Message: msg},
		FieldErrors: fieldErrors,
	}))
}

// seeOther redirects without a body.
func seeOther(c *gin.Context, location string) {
	c.Header("Location", location)
	c.AbortWithStatus(http.StatusSeeOther)
}
