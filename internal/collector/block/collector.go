// Package block builds the block device tree from sysfs.
package block

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sysdash/internal/logger"
)

// NewCollector reads devices below root, normally /sys/block.
func NewCollector(root string, log logger.Logger) *Collector {
	return &Collector{root: root, log: log}
}

// Collect lists the root and builds every entry with its partitions and
// holders. Only a failure to list the root is returned; unreadable
// attributes leave fields unset. The tree is built in full even when ctx
// is already done.
func (c *Collector) Collect(ctx context.Context) (BlockDevices, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		c.log.Error("failed to read block device root", "path", c.root, "error", err)
		return nil, fmt.Errorf("list %s: %w", c.root, err)
	}

	results := make([]*BlockDevice, len(entries))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, e := range entries {
		g.Go(func() error {
			results[i] = c.build(filepath.Join(c.root, e.Name()), e.Name(), 0)
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		c.log.Debug("block tree built after cancellation", "error", err)
	}

	devices := make(BlockDevices, len(results))
	for _, dev := range results {
		if dev != nil {
			devices[dev.Name] = dev
		}
	}

	return devices, nil
}
