package gemini

import (
	"context"
	"fmt"

	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"google.golang.org/genai"
)

// Client adapts the Gemini API to the TextGenerator port. Callers treat
// every error as recoverable; the adapter never retries on its own.
type Client struct {
	client *genai.Client
	logger ports.LoggerPort
}

func NewClient(ctx context.Context, apiKey string, logger ports.LoggerPort) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *Client) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Warn("Gemini call failed", map[string]interface{}{
			"error": err.Error(),
			"model": model,
		})
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func (c *Client) GenerateStructured(ctx context.Context, model string, prompt string, image []byte, mimeType string) (string, error) {
	var parts []*genai.Part
	if len(image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(image, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		c.logger.Warn("Gemini structured call failed", map[string]interface{}{
			"error": err.Error(),
			"model": model,
		})
		return "", fmt.Errorf("generate structured content: %w", err)
	}
	return resp.Text(), nil
}
