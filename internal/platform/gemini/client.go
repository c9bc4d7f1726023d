// Package gemini identifies ingredients in an image with the Gemini API.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/ingredients"
)

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 20 * time.Second
)

// Model is the subset of *genai.GenerativeModel the identifier needs.
type Model interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client is an ingredient identifier backed by Gemini.
type Client struct {
	model   Model
	closer  func() error
	timeout time.Duration
}

// NewClient creates a Gemini backed identifier.
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Client, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c := NewWithModel(client.GenerativeModel(modelName), timeout)
	c.closer = client.Close
	return c, nil
}

// NewWithModel wraps an existing model.
func NewWithModel(model Model, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{model: model, timeout: timeout}
}

// IdentifyIngredients sends the image with the fixed prompt and returns the
// raw comma separated answer. No candidates means no ingredients.
func (c *Client) IdentifyIngredients(ctx context.Context, base64Image string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return "", apperrors.Validation("Image must be base64 encoded")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx,
		genai.ImageData("jpeg", raw),
		genai.Text(ingredients.Prompt),
	)
	if err != nil {
		return "", apperrors.UpstreamModel(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
