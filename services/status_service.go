package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/sentiment-service/hostmetrics"
	"github.com/blogem/sentiment-service/models"
	"github.com/blogem/sentiment-service/repositories"
)

// StatusService interface defines host status business logic
type StatusService interface {
	Status(ctx context.Context, receivedAt time.Time) (*models.StatusSnapshot, error)
}

// statusService implements StatusService interface
type statusService struct {
	sampler hostmetrics.Sampler
	logRepo repositories.LogRepository
}

// NewStatusService creates a new status service
func NewStatusService(sampler hostmetrics.Sampler, logRepo repositories.LogRepository) StatusService {
	return &statusService{
		sampler: sampler,
		logRepo: logRepo,
	}
}

// Status samples the host, attaches the latest log entries and records the snapshot.
// The recent entries are read before the snapshot is appended, so a snapshot never
// contains itself.
func (s *statusService) Status(ctx context.Context, receivedAt time.Time) (*models.StatusSnapshot, error) {
	metrics, err := s.sampler.Sample(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sample host metrics: %w", err)
	}

	snapshot := &models.StatusSnapshot{
		HostMetrics: metrics,
		Logs:        s.logRepo.Recent(models.RecentLogsInStatus),
	}

	s.logRepo.Append(models.NewLogEntry(receivedAt, models.EndpointStatus, *snapshot))

	return snapshot, nil
}
