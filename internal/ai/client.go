// Package ai defines the interface for AI text generation and provides a
// Gemini-backed implementation.
package ai

import "context"

// Provider is the interface the report generator uses to obtain AI-authored
// narrative content. The concrete implementation lives in gemini.go.
// Tests inject a stub that returns canned responses.
type Provider interface {
	// GenerateText sends one prompt and returns the model's raw response
	// text, which callers parse themselves.
	//
	// Implementations must be safe to call concurrently.
	// A non-nil error means the entire call failed; the report generator
	// will fall back to template content.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
