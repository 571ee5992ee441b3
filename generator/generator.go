package generator

import (
	"context"
)

// ModelGPT4oMini is the model used for sentiment analysis
const ModelGPT4oMini = "gpt-4o-mini"

// Config holds text-generation provider configuration
type Config struct {
	APIKey  string
	BaseURL string
}

// Provider interface abstracts text-generation provider operations
type Provider interface {
	// Generate sends a single prompt and returns the model's text completion
	Generate(ctx context.Context, prompt string) (string, error)
}
