// Package gemini wraps the generative text collaborator behind a one-method
// interface. The rest of the system depends only on the response text: no
// structured schema, no retries, no rate limiting.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// ErrUnavailable signals that no generator is configured for this process.
var ErrUnavailable = errors.New("text generation is unavailable")

// TextGenerator is the opaque text-completion capability: given a prompt,
// eventually a text result or a failure.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client generates text through Google's Gemini API, parameterized by a model
// identifier string.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient -> %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("c.client.Models.GenerateContent -> %w", err)
	}

	return result.Text(), nil
}

// Unavailable is the generator used when no API credential is configured.
// Every call fails, which downstream treats as fail-open / fail-silent.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
