package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You are a personal finance advisor. You MUST respond with ONLY a valid JSON object " +
	`with exactly two string keys: "predictedSpending" and "potentialSavings". ` +
	"Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. " +
	"Start your response directly with { and end with }."

// openAIForecaster implements Forecaster against the OpenAI chat completions API.
type openAIForecaster struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string // overridable for tests
}

// newOpenAIForecaster creates an OpenAI-backed Forecaster.
func newOpenAIForecaster(cfg Config) (Forecaster, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &openAIForecaster{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultOpenAIBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Predict sends the transaction history to OpenAI and parses the prediction.
func (f *openAIForecaster) Predict(ctx context.Context, transactionHistory string, timeframe Timeframe) (Result, error) {
	requestBody := map[string]any{
		"model": f.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildPrompt(transactionHistory, timeframe)},
		},
		"temperature": 0.3,
		"max_tokens":  600,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return Result{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(response.Choices) == 0 {
		return Result{}, fmt.Errorf("no completion choices returned")
	}

	return parseResult(response.Choices[0].Message.Content)
}

// buildPrompt renders the user message around the transaction history.
func buildPrompt(transactionHistory string, timeframe Timeframe) string {
	return fmt.Sprintf(`Analyze the user's transaction history and predict their future spending for the specified timeframe. Also, provide potential savings or adjustments to help them avoid overspending.

Transaction History:
%s

Prediction Timeframe:
%s

Based on this information, provide a predicted spending amount and advice on how to save money. Ensure that the prediction and advice are clear and actionable.`, transactionHistory, timeframe)
}

// parseResult extracts the prediction from the model's reply.
func parseResult(content string) (Result, error) {
	content = cleanMarkdownWrapper(content)

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return Result{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if result.PredictedSpending == "" {
		return Result{}, fmt.Errorf("no prediction found in response")
	}
	return result, nil
}

// cleanMarkdownWrapper strips markdown code fences some models wrap JSON in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
