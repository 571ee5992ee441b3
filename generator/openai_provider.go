package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/oauth2"
)

// ErrEmptyCompletion is returned when the provider answers without any choices
var ErrEmptyCompletion = errors.New("completion contained no choices")

// OpenAIProvider implements the Provider interface for the OpenAI chat completions API
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider with the given configuration
func NewOpenAIProvider(cfg Config) (Provider, error) {
	// Validate required configuration
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	// The bearer token is attached by the oauth2 transport on every request
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.APIKey,
		TokenType:   "Bearer",
	}))

	clientConfig := openai.DefaultConfig("")
	clientConfig.HTTPClient = httpClient
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  ModelGPT4oMini,
	}, nil
}

// Generate sends the prompt as a single user message and returns the first choice
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion with %s: %w", p.model, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
