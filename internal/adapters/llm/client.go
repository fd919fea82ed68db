// Package llm is the chat-completions text generator and the sources
// built on it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip_planner/internal/adapters/webclient"
	"trip_planner/internal/domain"
)

var ErrEmptyCompletion = errors.New("llm: completion has no content")

type Client struct {
	wc    *webclient.Client
	base  string
	model string
}

// New returns domain.ErrNotConfigured when key is empty.
func New(base, key, model string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("llm: %w", domain.ErrNotConfigured)
	}
	wc := webclient.New("llm", webclient.Options{
		Timeout: 60 * time.Second,
		RPS:     rps,
		Headers: map[string]string{"Authorization": "Bearer " + key},
	})
	return NewWithClient(base, model, wc), nil
}

func NewWithClient(base, model string, wc *webclient.Client) *Client {
	return &Client{wc: wc, base: strings.TrimRight(base, "/"), model: model}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	TopP           float64         `json:"top_p,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Generate implements domain.TextGenerator. The returned text is untrusted.
func (c *Client) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        0.95,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, message{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, message{Role: "user", Content: req.Prompt})
	// Only objects can be forced; arrays are asked for in the prompt.
	if req.Format == domain.FormatJSONObject {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out chatResponse
	if err := c.wc.PostJSON(ctx, c.base+"/chat/completions", body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}
