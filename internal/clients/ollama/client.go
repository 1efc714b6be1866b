// Package ollama talks to a local Ollama-compatible generation endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "searchscout/internal/common/errors"
	"searchscout/internal/common/logger"
	"searchscout/internal/common/observability"
)

const metricSource = "interpreter"

// Config holds the generation endpoint settings.
type Config struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type Client struct {
	config     Config
	httpClient *http.Client
	obs        *observability.Observability
	logger     logger.Logger
}

func NewClient(cfg Config, obs *observability.Observability, log logger.Logger) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		obs:    obs,
		logger: log,
	}
}

type generateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends prompt to the model and returns the raw completion text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]interface{}{
			"temperature": c.config.Temperature,
			"num_predict": c.config.MaxTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		if ctx.Err() == context.DeadlineExceeded {
			return "", apperrors.NewInterpreterTimeoutError()
		}
		return "", apperrors.NewInterpreterUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.NewInterpreterUnavailableError(
			fmt.Errorf("generate endpoint returned %d: %s", resp.StatusCode, string(body)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return "", apperrors.NewInterpreterBadOutputError(err.Error())
	}

	c.obs.RecordUpstreamCall(ctx, metricSource, "success")
	c.logger.Debug("Model generation completed", map[string]interface{}{
		"model":       c.config.Model,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return out.Response, nil
}
