package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/forecast"
	"spendwise/internal/store"
)

// ForecastHandler handles AI spending forecast requests
type ForecastHandler struct {
	store      *store.Store
	forecaster forecast.Forecaster
}

// NewForecastHandler creates a new ForecastHandler. A nil forecaster means
// the feature is not configured; requests then fail with a service-level
// error instead of a transport one.
func NewForecastHandler(s *store.Store, f forecast.Forecaster) *ForecastHandler {
	return &ForecastHandler{store: s, forecaster: f}
}

// ForecastRequest represents the payload for requesting a spending forecast
type ForecastRequest struct {
	PredictionTimeframe string `json:"predictionTimeframe" binding:"required,prediction_timeframe"`
}

// Predict renders the recent transaction history and asks the forecaster for
// a prediction. Failures are transient and retryable; AppState is never
// touched by this path.
func (h *ForecastHandler) Predict(c *gin.Context) {
	var req ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	if h.forecaster == nil {
		respondWithError(c, apperrors.ErrForecastNotConfigured)
		return
	}

	history := forecast.FormatHistory(h.store.State())
	result, err := h.forecaster.Predict(c.Request.Context(), history, forecast.Timeframe(req.PredictionTimeframe))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrForecastUnavailable, err))
		return
	}

	c.JSON(http.StatusOK, result)
}
