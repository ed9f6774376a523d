// Package memory
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sysdash/internal/logger"
)

func NewCollector(procRoot string, log logger.Logger) *Collector {
	return &Collector{procRoot: procRoot, log: log}
}

func (c *Collector) Collect(ctx context.Context) (*MemInfo, error) {
	path := filepath.Join(c.procRoot, "meminfo")
	file, err := os.Open(path)
	if err != nil {
		c.log.Error("failed to open meminfo", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return c.readMemInfo(file)
}
