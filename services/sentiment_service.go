package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blogem/sentiment-service/generator"
	"github.com/blogem/sentiment-service/models"
	"github.com/blogem/sentiment-service/repositories"
)

const promptTemplate = `Analyze the sentiment of the following text and respond with only one word - 'positive', 'negative', or 'neutral': "%s"`

// BuildPrompt embeds the raw user text in the classification prompt
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// NormalizeSentiment lower-cases and trims a model completion
func NormalizeSentiment(completion string) string {
	return strings.ToLower(strings.TrimSpace(completion))
}

// SentimentService interface defines sentiment analysis business logic
type SentimentService interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest, receivedAt time.Time) (*models.AnalyzeResult, error)
}

// sentimentService implements SentimentService interface
type sentimentService struct {
	provider generator.Provider
	logRepo  repositories.LogRepository
	logger   *slog.Logger
}

// NewSentimentService creates a new sentiment service
func NewSentimentService(provider generator.Provider, logRepo repositories.LogRepository, logger *slog.Logger) SentimentService {
	return &sentimentService{
		provider: provider,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// Analyze classifies the text with a single provider call and records the result.
// The completion is not checked against the allowed labels; unexpected output is
// returned as-is and only flagged in the diagnostic log.
func (s *sentimentService) Analyze(ctx context.Context, req models.AnalyzeRequest, receivedAt time.Time) (*models.AnalyzeResult, error) {
	// Validate request
	if errors := req.Validate(); errors.HasErrors() {
		return nil, errors
	}

	completion, err := s.provider.Generate(ctx, BuildPrompt(req.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to generate sentiment: %w", err)
	}

	result := &models.AnalyzeResult{Sentiment: NormalizeSentiment(completion)}
	if !models.IsKnownSentiment(result.Sentiment) {
		s.logger.Warn("model returned an unexpected sentiment label", "sentiment", result.Sentiment)
	}

	s.logRepo.Append(models.NewLogEntry(receivedAt, models.EndpointAnalyze, *result))
	s.logger.Info("analysis completed",
		"endpoint", models.EndpointAnalyze,
		"sentiment", result.Sentiment,
		"log_entries", s.logRepo.Len(),
	)

	return result, nil
}
