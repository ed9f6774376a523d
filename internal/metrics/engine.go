// Package metrics turns two snapshots into rates and runs the refresh loop.
package metrics

import (
	"sysdash/internal/collector/block"
	"sysdash/internal/domain"
)

type Engine struct {
	showStacked bool
}

// NewEngine returns an engine. Unless showStacked is set, devices that are
// also holders of another device are listed only below that device.
func NewEngine(showStacked bool) *Engine {
	return &Engine{showStacked: showStacked}
}

// Compute derives the report for curr. prev may be nil on the first cycle,
// in which case no rates are known. The interval is the distance between the
// two sample timestamps.
func (e *Engine) Compute(prev, curr *domain.Snapshot) domain.Report {
	if curr == nil {
		return domain.Report{}
	}
	if prev == nil {
		prev = &domain.Snapshot{}
	}

	dt := curr.TakenAt.Sub(prev.TakenAt)
	if prev.TakenAt.IsZero() {
		dt = 0
	}

	devices := curr.Block
	if !e.showStacked {
		devices = block.HideStacked(devices)
	}

	disks := diskInput{
		mounts:      curr.Mounts,
		usage:       curr.Usage,
		usageErrors: curr.UsageErrors,
		dt:          dt,
	}

	return domain.Report{
		TakenAt:    curr.TakenAt,
		Interval:   dt,
		Disks:      disks.diskReports(prev.Block, devices),
		Interfaces: interfaceReports(prev.Net, curr.Net, curr.Interfaces, dt),
		CPU:        calculateCPUUsage(prev.CPU, curr.CPU),
		CPUInfo:    curr.CPUInfo,
		Memory:     curr.Memory,
		System:     curr.System,
	}
}
