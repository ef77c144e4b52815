package http

import "github.com/gin-gonic/gin"

// Register registers the page routes
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/", h.Landing)
	r.GET("/predict", h.PredictionForm)
	r.POST("/predict", h.SubmitPrediction)
	r.GET("/results", h.Results)
}
