package metrics

import (
	"context"
	"time"

	"sysdash/internal/domain"
	"sysdash/internal/logger"
	"sysdash/internal/storage/snapshot"
)

type Source interface {
	Sample(ctx context.Context) *domain.Snapshot
}

// Scheduler owns the previous snapshot. Each cycle samples, computes the
// report against the previous snapshot, hands it to sink and only then
// replaces the previous snapshot.
type Scheduler struct {
	interval time.Duration
	log      logger.Logger
	source   Source
	engine   *Engine
	sink     func(domain.Report)

	prev   *snapshot.SnapshotStore
	latest *snapshot.ReportStore
}

func NewScheduler(interval time.Duration, log logger.Logger, source Source, engine *Engine, sink func(domain.Report)) *Scheduler {
	return &Scheduler{
		interval: interval,
		log:      log,
		source:   source,
		engine:   engine,
		sink:     sink,
		prev:     snapshot.NewSnapshotStore(),
		latest:   snapshot.NewReportStore(),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", "interval", s.interval)
	s.Cycle(ctx)

	for {
		select {
		case <-ticker.C:
			s.Cycle(ctx)
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		}
	}
}

// Cycle runs one refresh and returns its report. The first cycle has no
// rates. A slow read blocks the cycle; ticks missed meanwhile are dropped
// by the ticker.
func (s *Scheduler) Cycle(ctx context.Context) domain.Report {
	curr := s.source.Sample(ctx)
	report := s.engine.Compute(s.prev.Get(), curr)

	s.latest.Set(report)
	if s.sink != nil {
		s.sink(report)
	}

	old := s.prev.Swap(curr)
	s.log.Debug("cycle complete",
		"first", old == nil,
		"disks", len(report.Disks),
		"interfaces", len(report.Interfaces),
		"interval", report.Interval,
	)
	return report
}

func (s *Scheduler) Latest() domain.Report {
	return s.latest.Get()
}
