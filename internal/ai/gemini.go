package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// geminiClient is the concrete Provider backed by the Gemini API.
type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini returns a Provider that calls the Gemini API.
//   - apiKey:  your GEMINI_API_KEY
//   - model:   e.g. "gemini-2.5-flash"
//   - timeout: per-call budget, applied on top of the caller's context
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: create gemini client: %w", err)
	}

	return &geminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateText sends one generateContent request and returns the response
// text. The response is requested as application/json since every caller
// expects a JSON payload back.
func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr(float32(0.4)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("ai: generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("ai: no text content in response from %s", c.model)
	}

	return text, nil
}
