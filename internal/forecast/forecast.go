// Package forecast asks a hosted language model to predict future spending
// from a rendered transaction history. The call is opaque, potentially slow,
// and potentially failing; it never reads or writes AppState beyond the
// history text handed to it.
package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Timeframe is the horizon a forecast covers.
type Timeframe string

const (
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeQuarterly Timeframe = "quarterly"
)

// ValidTimeframe reports whether tf is a known prediction timeframe.
func ValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly:
		return true
	}
	return false
}

// Result carries the free-text prediction produced by the model. Both fields
// are natural language with no further structure guaranteed.
type Result struct {
	PredictedSpending string `json:"predictedSpending"`
	PotentialSavings  string `json:"potentialSavings"`
}

// Forecaster predicts future spending from a rendered transaction history.
type Forecaster interface {
	Predict(ctx context.Context, transactionHistory string, timeframe Timeframe) (Result, error)
}

// Config holds provider selection and credentials for a Forecaster.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// New creates a Forecaster for the configured provider.
func New(cfg Config) (Forecaster, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIForecaster(cfg)
	default:
		return nil, fmt.Errorf("unsupported forecast provider: %s", cfg.Provider)
	}
}
