package metrics

import (
	"time"

	"sysdash/internal/domain"
)

type diskInput struct {
	mounts      domain.Mounts
	usage       map[string]domain.FSUsage
	usageErrors map[string]string
	dt          time.Duration
}

// diskReports walks prev and curr in lockstep, matching children by name at
// every level. Devices without a previous node or without counters get no
// rates.
func (in diskInput) diskReports(prev, curr domain.BlockDevices) []domain.DiskReport {
	if len(curr) == 0 {
		return nil
	}

	out := make([]domain.DiskReport, 0, len(curr))
	for _, name := range curr.Names() {
		dev := curr[name]
		prevDev := prev[name]

		r := domain.DiskReport{
			Name:   name,
			Path:   dev.Path(),
			Device: dev,
		}

		in.correlate(&r, dev)

		if prevDev != nil {
			diskRates(&r, prevDev.Counters, dev.Counters, in.dt)
			r.Children = in.diskReports(prevDev.Children, dev.Children)
		} else {
			r.Children = in.diskReports(nil, dev.Children)
		}

		out = append(out, r)
	}
	return out
}

func (in diskInput) correlate(r *domain.DiskReport, dev *domain.BlockDevice) {
	m, ok := in.mounts.Lookup(dev)
	if !ok {
		return
	}
	r.Mount = &m

	if u, ok := in.usage[m.MountPoint]; ok {
		r.Usage = &u
		return
	}
	if msg, ok := in.usageErrors[m.MountPoint]; ok {
		r.UsageError = msg
	}
}

func diskRates(r *domain.DiskReport, prev, curr *domain.IOCounters, dt time.Duration) {
	if prev == nil || curr == nil {
		return
	}

	var readReset, writeReset, ticksReset bool
	r.ReadBytes, readReset = counterRate(curr.ReadSectors, prev.ReadSectors, domain.SectorSize, dt)
	r.WriteBytes, writeReset = counterRate(curr.WriteSectors, prev.WriteSectors, domain.SectorSize, dt)

	var busy uint64
	busy, ticksReset = SaturatingSub(curr.IOTicks, prev.IOTicks)
	r.Utilization = utilization(busy, dt)

	r.Reset = readReset || writeReset || ticksReset
}

// utilization turns milliseconds spent doing I/O into a percentage of dt.
func utilization(busyMillis uint64, dt time.Duration) domain.Rate {
	if dt <= 0 {
		return domain.Rate{}
	}

	pct := float64(busyMillis) / (dt.Seconds() * 1000) * 100
	return domain.Rate{Value: min(pct, 100), Known: true}
}
