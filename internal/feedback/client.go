// Package feedback calls a hosted language model for short motivational
// hydration advice. The call is strictly best-effort: every failure class
// degrades to a human-readable string so the intake flow never fails or
// blocks on the remote service beyond the client timeout.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"acqua/internal/metrics"

	"github.com/go-resty/resty/v2"
)

// DefaultAPIURL is the HuggingFace router inference endpoint.
const DefaultAPIURL = "https://router.huggingface.co/hf-inference/models/mistralai/Mistral-7B-Instruct-v0.1"

const maxNewTokens = 100

type Client struct {
	http   *resty.Client
	apiURL string
	apiKey string
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// NewClient builds a client with a bounded timeout. A single attempt is
// made per call; there is no retry.
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		http:   resty.New().SetTimeout(timeout),
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// Advise asks the model for two lines of hydration advice given today's
// consumed total and the daily goal. The returned string is either the
// model output or a failure description; it is never an error.
func (c *Client) Advise(ctx context.Context, totalMl, goalMl int64) string {
	if c.apiKey == "" {
		metrics.AdvisoryFailures.Inc()
		return "HF_API_KEY not configured, advisory feedback unavailable"
	}

	prompt := fmt.Sprintf(
		"The user has consumed %d ml of water today. The daily goal is %d ml. "+
			"Give short motivational hydration advice in 2 lines.",
		totalMl, goalMl)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(inferenceRequest{
			Inputs:     prompt,
			Parameters: inferenceParameters{MaxNewTokens: maxNewTokens},
		}).
		Post(c.apiURL)
	if err != nil {
		metrics.AdvisoryFailures.Inc()
		slog.WarnContext(ctx, "Advisory request failed",
			"component", "feedback",
			"error", err)
		return fmt.Sprintf("advisory request failed: %v", err)
	}

	if resp.StatusCode() != 200 {
		metrics.AdvisoryFailures.Inc()
		slog.WarnContext(ctx, "Advisory upstream error",
			"component", "feedback",
			"status", resp.StatusCode())
		return fmt.Sprintf("AI error %d: %s", resp.StatusCode(), resp.String())
	}

	var result []generation
	if err := json.Unmarshal(resp.Body(), &result); err != nil || len(result) == 0 {
		metrics.AdvisoryFailures.Inc()
		return fmt.Sprintf("unexpected AI response: %s", resp.String())
	}

	return result[0].GeneratedText
}
