package models

import "time"

// Endpoint names recorded in the request log
const (
	EndpointAnalyze = "/analyze"
	EndpointStatus  = "/status"
)

// LogEntry records one endpoint invocation and its result.
// Entries are immutable once appended to the log.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Endpoint  string `json:"endpoint"`
	Result    any    `json:"result"`
}

// NewLogEntry creates a log entry stamped with the time the request arrived
func NewLogEntry(receivedAt time.Time, endpoint string, result any) LogEntry {
	return LogEntry{
		Timestamp: FormatTimestamp(receivedAt),
		Endpoint:  endpoint,
		Result:    result,
	}
}
