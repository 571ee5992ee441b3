// Package hostmetrics samples host-level load, memory and uptime from the operating system.
package hostmetrics

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/blogem/sentiment-service/models"
)

// Sampler reads a point-in-time view of the host
type Sampler interface {
	Sample(ctx context.Context) (models.HostMetrics, error)
}

type systemSampler struct{}

// NewSampler creates a sampler backed by OS queries
func NewSampler() Sampler {
	return &systemSampler{}
}

// Sample queries load average, virtual memory and uptime.
// FreeMemory is the kernel's free figure, not the larger "available" one.
func (s *systemSampler) Sample(ctx context.Context) (models.HostMetrics, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return models.HostMetrics{}, fmt.Errorf("failed to read load average: %w", err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.HostMetrics{}, fmt.Errorf("failed to read memory stats: %w", err)
	}

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return models.HostMetrics{}, fmt.Errorf("failed to read uptime: %w", err)
	}

	return models.HostMetrics{
		CPUUsage:    avg.Load1,
		TotalMemory: vm.Total,
		FreeMemory:  vm.Free,
		Uptime:      float64(uptime),
	}, nil
}
