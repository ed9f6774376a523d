// Package fsusage asks the kernel how full a mounted filesystem is.
package fsusage

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Probe struct {
	log logger.Logger
}

func NewProbe(log logger.Logger) *Probe {
	return &Probe{log: log}
}

// Usage fails when mountPoint vanished or is not accessible.
func (p *Probe) Usage(mountPoint string) (domain.FSUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(mountPoint, &st); err != nil {
		return domain.FSUsage{}, fmt.Errorf("statfs %s: %w: %w", mountPoint, domain.ErrUnavailable, err)
	}

	bsize := uint64(st.Frsize)
	if bsize == 0 {
		bsize = uint64(st.Bsize)
	}

	return domain.FSUsage{
		BlockSize:       bsize,
		TotalBlocks:     st.Blocks,
		AvailableBlocks: st.Bavail,
	}, nil
}

// Collect probes every mount point. Failures are returned per mount point
// so one stale mount does not hide the others. Once ctx is done the
// remaining mount points are reported as unavailable without a syscall.
func (p *Probe) Collect(ctx context.Context, mounts domain.Mounts) (map[string]domain.FSUsage, map[string]string) {
	usage := make(map[string]domain.FSUsage, len(mounts))
	failed := map[string]string{}

	for _, path := range mounts.Paths() {
		mp := mounts[path].MountPoint
		if _, done := usage[mp]; done {
			continue
		}
		if _, done := failed[mp]; done {
			continue
		}

		if err := ctx.Err(); err != nil {
			failed[mp] = fmt.Errorf("statfs %s: %w: %w", mp, domain.ErrUnavailable, err).Error()
			continue
		}

		u, err := p.Usage(mp)
		if err != nil {
			p.log.Debug("filesystem usage unavailable", "mount_point", mp, "error", err)
			failed[mp] = err.Error()
			continue
		}
		usage[mp] = u
	}

	return usage, failed
}
