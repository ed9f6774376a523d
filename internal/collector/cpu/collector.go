// Package cpu
package cpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sysdash/internal/logger"
)

// NewCollector reads /proc/stat below procRoot and per core frequencies
// below cpuRoot, normally /sys/devices/system/cpu.
func NewCollector(procRoot, cpuRoot string, log logger.Logger) *Collector {
	return &Collector{procRoot: procRoot, cpuRoot: cpuRoot, log: log}
}

func (c *Collector) Collect(ctx context.Context) (CPUStats, error) {
	path := filepath.Join(c.procRoot, "stat")
	f, err := os.Open(path)
	if err != nil {
		c.log.Error("failed to open cpu stat", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ParseStat(f, c.log)
}
