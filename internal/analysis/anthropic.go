package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultAnthropicURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion    = "2023-06-01"
	anthropicModel      = "claude-3-7-sonnet-20250219"
)

// UpstreamError means the completion call itself failed (network, auth,
// rate limit). Distinct from parse failures on a successful response.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis upstream: %s: %v", e.Message, e.Err)
	}
	return "analysis upstream: " + e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

type AnthropicClient struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

func NewAnthropicClient() *AnthropicClient {
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = anthropicModel
	}
	return &AnthropicClient{
		apiKey:     os.Getenv("ANTHROPIC_API_KEY"),
		model:      model,
		apiURL:     defaultAnthropicURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewAnthropicClientWithURL is used by tests to point at a fake upstream.
func NewAnthropicClientWithURL(apiKey, apiURL string, httpClient *http.Client) *AnthropicClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &AnthropicClient{
		apiKey:     apiKey,
		model:      anthropicModel,
		apiURL:     apiURL,
		httpClient: httpClient,
	}
}

// Complete sends a single user message and returns the first text block
// of the model's reply.
func (a *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if a.apiKey == "" {
		return "", &UpstreamError{Message: "missing ANTHROPIC_API_KEY"}
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Message: "reading response failed", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{
			Message: fmt.Sprintf("api error %d: %s", resp.StatusCode, string(raw)),
		}
	}

	// Anthropic response shape
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &UpstreamError{Message: "malformed response body", Err: err}
	}

	if len(result.Content) == 0 {
		return "", &UpstreamError{Message: "empty completion response"}
	}

	return result.Content[0].Text, nil
}
