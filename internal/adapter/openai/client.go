// Package openai implements the plan-generator port against a hosted
// chat-completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mealplanner/internal/domain"
)

// DefaultBaseURL is the hosted API endpoint. Overridable for tests and
// compatible gateways.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultModel is the fixed model identifier used for plan generation.
const DefaultModel = "gpt-4.1-mini"

// systemInstruction is the fixed system-role message sent with every plan
// request.
const systemInstruction = "You are a precise, practical meal-planning assistant " +
	"for evidence-based weight management."

// Client sends one chat-completion request per plan generation. No
// streaming, no retry; the only timeout is whatever the context carries.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

var _ domain.PlanGenerator = (*Client)(nil)

// New creates a Client. Empty model or baseURL fall back to the defaults.
func New(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// GeneratePlan performs exactly one request/response exchange and returns
// the first choice's message content. Every failure mode (transport, HTTP
// status, malformed or empty response) surfaces as a distinguishable error
// carrying the underlying detail.
func (c *Client) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat completions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fail chatResponse
		if json.Unmarshal(raw, &fail) == nil && fail.Error != nil && fail.Error.Message != "" {
			return "", fmt.Errorf("chat completions: status %d: %s", resp.StatusCode, fail.Error.Message)
		}
		return "", fmt.Errorf("chat completions: status %d: %s", resp.StatusCode, raw)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completions: response contained no choices")
	}
	text := out.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("chat completions: first choice has empty content")
	}
	return text, nil
}
