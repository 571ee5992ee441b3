package models

// RecentLogsInStatus is how many of the latest log entries a status snapshot carries
const RecentLogsInStatus = 5

// HostMetrics is a single sample of host load, memory and uptime
type HostMetrics struct {
	CPUUsage    float64 `json:"cpuUsage"` // 1-minute load average
	TotalMemory uint64  `json:"totalMemory"`
	FreeMemory  uint64  `json:"freeMemory"`
	Uptime      float64 `json:"uptime"` // seconds
}

// StatusSnapshot is the response of GET /status.
// Logs holds the most recent entries as they were before this snapshot was recorded.
type StatusSnapshot struct {
	HostMetrics
	Logs []LogEntry `json:"logs"`
}
