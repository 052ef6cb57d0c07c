// Package gemini implements the advisor's model interface on top of the
// Google GenAI SDK.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// defaultTimeout bounds the outbound model call. An unbounded wait on a
	// third-party network call is the dominant availability risk of the
	// chat endpoint.
	defaultTimeout = 30 * time.Second
)

// Client wraps one long-lived genai client, created at startup and shared
// by every request.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates the shared Gemini client. An empty model selects
// DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: c, model: model, timeout: defaultTimeout}, nil
}

// Complete sends the grounding document as the system instruction and the
// user's message as the sole user turn, and returns the single text
// completion. No streaming, no multi-turn memory: each call is
// self-contained.
func (c *Client) Complete(ctx context.Context, grounding, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: grounding}},
		},
	}
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: message}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model")
	}

	return text, nil
}
