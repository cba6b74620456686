package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"spendwise/internal/forecast"
	"spendwise/internal/handlers"
	"spendwise/internal/store"
)

// stubForecaster returns a fixed result or error and records its inputs.
type stubForecaster struct {
	result    forecast.Result
	err       error
	history   string
	timeframe forecast.Timeframe
}

func (s *stubForecaster) Predict(ctx context.Context, history string, timeframe forecast.Timeframe) (forecast.Result, error) {
	s.history = history
	s.timeframe = timeframe
	return s.result, s.err
}

func forecastRouter(s *store.Store, f forecast.Forecaster) *gin.Engine {
	router := gin.New()
	router.POST("/forecast", handlers.NewForecastHandler(s, f).Predict)
	router.POST("/transactions", handlers.NewTransactionHandler(s).CreateTransaction)
	return router
}

func TestPredictForecast(t *testing.T) {
	s := newTestStore(t)
	stub := &stubForecaster{result: forecast.Result{
		PredictedSpending: "$300 next month",
		PotentialSavings:  "Cook at home twice a week",
	}}
	router := forecastRouter(s, stub)

	w := doRequest(router, http.MethodPost, "/transactions", validTransactionPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("seed transaction failed: %s", w.Body.String())
	}

	w = doRequest(router, http.MethodPost, "/forecast", map[string]any{"predictionTimeframe": "monthly"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nbody: %s", w.Code, w.Body.String())
	}

	body := parseJSON(t, w)
	if body["predictedSpending"] != "$300 next month" {
		t.Errorf("unexpected prediction: %v", body["predictedSpending"])
	}
	if body["potentialSavings"] != "Cook at home twice a week" {
		t.Errorf("unexpected savings advice: %v", body["potentialSavings"])
	}

	if stub.timeframe != forecast.TimeframeMonthly {
		t.Errorf("expected monthly timeframe, got %s", stub.timeframe)
	}
	if !strings.Contains(stub.history, "2024-03-05") {
		t.Error("the rendered history should include the seeded transaction")
	}
}

func TestPredictForecastValidation(t *testing.T) {
	router := forecastRouter(newTestStore(t), &stubForecaster{})

	w := doRequest(router, http.MethodPost, "/forecast", map[string]any{})
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")

	w = doRequest(router, http.MethodPost, "/forecast", map[string]any{"predictionTimeframe": "decade"})
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
}

func TestPredictForecastNotConfigured(t *testing.T) {
	router := forecastRouter(newTestStore(t), nil)

	w := doRequest(router, http.MethodPost, "/forecast", map[string]any{"predictionTimeframe": "weekly"})
	assertErrorCode(t, w, http.StatusServiceUnavailable, "FORECAST_NOT_CONFIGURED")
}

func TestPredictForecastUpstreamFailure(t *testing.T) {
	stub := &stubForecaster{err: errors.New("upstream timeout")}
	router := forecastRouter(newTestStore(t), stub)

	w := doRequest(router, http.MethodPost, "/forecast", map[string]any{"predictionTimeframe": "quarterly"})
	assertErrorCode(t, w, http.StatusBadGateway, "FORECAST_UNAVAILABLE")
}
