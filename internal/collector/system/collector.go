// Package system reads host identity: names, kernel, uptime and firmware.
package system

import (
	"context"

	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Collector struct {
	procRoot  string
	sysRoot   string
	osRelease string
	log       logger.Logger
}

func NewCollector(procRoot, sysRoot, osRelease string, log logger.Logger) *Collector {
	return &Collector{procRoot: procRoot, sysRoot: sysRoot, osRelease: osRelease, log: log}
}

// Collect is best effort; fields that cannot be read stay empty.
func (c *Collector) Collect(ctx context.Context) (domain.SystemInfo, error) {
	kernel, arch := c.getKernel()

	return domain.SystemInfo{
		Hostname:      c.getHostname(),
		OS:            c.getOSName(),
		KernelVersion: kernel,
		Arch:          arch,
		UptimeSeconds: c.getUptime(),
		Board:         c.getBoard(ctx),
		BIOS:          c.getBIOS(ctx),
	}, nil
}
