// Package generation implements the external text-generation collaborator
// behind resume generation, inclusive job-description rewriting and the chat
// assistant. Calls are single-shot: no retry, no backoff, no caching.
package generation

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.Generator = (*Client)(nil)

// Client generates text through a langchaingo model.
type Client struct {
	llm llms.Model
}

// NewClient initializes a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generator api key is empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}

	return &Client{llm: llm}, nil
}

// NewClientWithModel wraps an existing model (used in tests).
func NewClientWithModel(llm llms.Model) *Client {
	return &Client{llm: llm}
}

// Generate produces a completion for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	return resp, nil
}
