package cpu

import (
	"context"
	"fmt"

	"github.com/jaypipes/ghw"

	"sysdash/internal/domain"
)

// Info describes the processors. Vendor and model come from the first
// package; cores and threads are summed over all of them. Clock speeds
// change every cycle and are left to Frequencies.
func (c *Collector) Info(ctx context.Context) (*domain.CPUInfo, error) {
	cpuInfo, err := ghw.CPU(ctx, ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	info := &domain.CPUInfo{}
	for i, processor := range cpuInfo.Processors {
		if i == 0 {
			info.Vendor = processor.Vendor
			info.Model = processor.Model
		}
		info.Cores += int(processor.TotalCores)
		info.Threads += int(processor.TotalHardwareThreads)
	}

	return info, nil
}
