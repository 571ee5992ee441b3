package services

import (
	"github.com/blogem/sentiment-service/models"
	"github.com/blogem/sentiment-service/repositories"
)

// LogService interface defines request log business logic
type LogService interface {
	GetAll() []models.LogEntry
}

// logService implements LogService interface
type logService struct {
	logRepo repositories.LogRepository
}

// NewLogService creates a new log service
func NewLogService(logRepo repositories.LogRepository) LogService {
	return &logService{logRepo: logRepo}
}

// GetAll retrieves the full request log in insertion order
func (s *logService) GetAll() []models.LogEntry {
	return s.logRepo.All()
}
