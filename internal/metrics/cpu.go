package metrics

import (
	"sysdash/internal/domain"
)

// calculateCPUUsage reports busy time as (user+nice+system) over all ten
// categories between two samples. Labels missing from prev are not known
// yet; a zero window is 0%.
func calculateCPUUsage(prev, curr domain.CPUStats) []domain.CPUUsage {
	if len(curr) == 0 {
		return nil
	}

	out := make([]domain.CPUUsage, 0, len(curr))
	for _, label := range curr.Labels() {
		u := domain.CPUUsage{Label: label}

		p, ok := prev[label]
		if !ok {
			out = append(out, u)
			continue
		}

		c := curr[label]
		work, workReset := SaturatingSub(c.Work(), p.Work())
		total, totalReset := SaturatingSub(c.Total(), p.Total())

		u.Known = true
		u.Reset = workReset || totalReset
		if total > 0 {
			u.Busy = min(float64(work)/float64(total)*100, 100)
		}

		out = append(out, u)
	}
	return out
}

// coreCount is one past the highest core index in stats.
func coreCount(stats domain.CPUStats) int {
	maxCore := -1
	for name := range stats {
		if idx, ok := domain.CPUCoreIndex(name); ok && idx > maxCore {
			maxCore = idx
		}
	}
	return maxCore + 1
}
