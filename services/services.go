package services

import (
	"log/slog"

	"github.com/blogem/sentiment-service/generator"
	"github.com/blogem/sentiment-service/hostmetrics"
	"github.com/blogem/sentiment-service/repositories"
)

// Services holds all service instances
type Services struct {
	Sentiment SentimentService
	Status    StatusService
	Logs      LogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, provider generator.Provider, sampler hostmetrics.Sampler, logger *slog.Logger) *Services {
	return &Services{
		Sentiment: NewSentimentService(provider, repos.Logs, logger.With("component", "sentiment")),
		Status:    NewStatusService(sampler, repos.Logs),
		Logs:      NewLogService(repos.Logs),
	}
}
