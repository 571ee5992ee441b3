package repositories

import (
	"sync"

	"github.com/blogem/sentiment-service/models"
)

// LogRepository handles the request log.
// The log is append-only and ordered by insertion.
type LogRepository interface {
	Append(entry models.LogEntry)
	All() []models.LogEntry
	Recent(n int) []models.LogEntry
	Len() int
}

type memoryLogRepository struct {
	mu      sync.RWMutex
	entries []models.LogEntry
}

// NewLogRepository creates a new in-memory log repository
func NewLogRepository() LogRepository {
	return &memoryLogRepository{}
}

// Append adds an entry to the end of the log
func (r *memoryLogRepository) Append(entry models.LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// All returns a copy of the full log. The result is never nil.
func (r *memoryLogRepository) All() []models.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Recent returns a copy of the last n entries, oldest first
func (r *memoryLogRepository) Recent(n int) []models.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	start := len(r.entries) - n
	if start < 0 {
		start = 0
	}

	out := make([]models.LogEntry, len(r.entries)-start)
	copy(out, r.entries[start:])
	return out
}

// Len returns the number of entries in the log
func (r *memoryLogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
