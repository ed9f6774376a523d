package metrics

import (
	"context"
	"sync"
	"time"

	"sysdash/internal/collector/block"
	"sysdash/internal/collector/cpu"
	"sysdash/internal/collector/fsusage"
	"sysdash/internal/collector/memory"
	"sysdash/internal/collector/mount"
	"sysdash/internal/collector/network"
	"sysdash/internal/collector/system"
	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

// Sampler reads every collector once per cycle. A failing collector is
// logged and leaves its part of the snapshot empty.
type Sampler struct {
	block   *block.Collector
	mounts  *mount.Reader
	fs      *fsusage.Probe
	network *network.Collector
	cpu     *cpu.Collector
	memory  *memory.Collector
	system  *system.Collector

	log logger.Logger

	cpuInfoOnce sync.Once
	cpuInfo     *domain.CPUInfo
}

func NewSampler(cfg *config.Config, log logger.Logger) *Sampler {
	return &Sampler{
		block:   block.NewCollector(cfg.BlockRoot(), log),
		mounts:  mount.NewReader(cfg.MountTablePath(), log),
		fs:      fsusage.NewProbe(log),
		network: network.NewCollector(cfg.ProcRoot, log),
		cpu:     cpu.NewCollector(cfg.ProcRoot, cfg.CPURoot(), log),
		memory:  memory.NewCollector(cfg.ProcRoot, log),
		system:  system.NewCollector(cfg.ProcRoot, cfg.SysRoot, cfg.OSRelease, log),

		log: log,
	}
}

func (s *Sampler) Close() error {
	return s.network.Close()
}

func (s *Sampler) Sample(ctx context.Context) *domain.Snapshot {
	snap := &domain.Snapshot{TakenAt: time.Now()}

	if val, err := s.block.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "block", "error", err)
	} else {
		snap.Block = val
	}

	if val, err := s.mounts.Read(ctx); err != nil {
		s.log.Error("collector", "name", "mount", "error", err)
	} else {
		snap.Mounts = val
		snap.Usage, snap.UsageErrors = s.fs.Collect(ctx, val)
	}

	if val, err := s.network.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "network", "error", err)
	} else {
		snap.Net = val
		snap.Interfaces = s.network.Interfaces(ctx, val)
	}

	if val, err := s.cpu.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "cpu", "error", err)
	} else {
		snap.CPU = val
		snap.CPUInfo = s.describeCPU(ctx, coreCount(val))
	}

	if val, err := s.memory.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "memory", "error", err)
	} else {
		snap.Memory = val
	}

	if val, err := s.system.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "system", "error", err)
	} else {
		snap.System = val
	}

	return snap
}

// describeCPU runs the hardware probe once and refreshes only the clock
// speeds on later cycles.
func (s *Sampler) describeCPU(ctx context.Context, cores int) *domain.CPUInfo {
	s.cpuInfoOnce.Do(func() {
		info, err := s.cpu.Info(ctx)
		if err != nil {
			s.log.Warn("cpu description unavailable", "error", err)
			return
		}
		s.cpuInfo = info
	})

	if s.cpuInfo == nil {
		return nil
	}

	info := *s.cpuInfo
	info.FrequencyMHz = s.cpu.Frequencies(cores)
	return &info
}
