package metrics

import (
	"time"

	"sysdash/internal/domain"
)

func interfaceReports(prev, curr domain.NetDevs, ifaces map[string]domain.Interface, dt time.Duration) []domain.InterfaceReport {
	if len(curr) == 0 {
		return nil
	}

	out := make([]domain.InterfaceReport, 0, len(curr))
	for _, name := range curr.Names() {
		c := curr[name]
		r := domain.InterfaceReport{Name: name, Counters: c}

		if iface, ok := ifaces[name]; ok {
			r.Interface = &iface
		}

		if p, ok := prev[name]; ok {
			var resets [4]bool
			r.RxBytes, resets[0] = counterRate(c.RxBytes, p.RxBytes, 1, dt)
			r.TxBytes, resets[1] = counterRate(c.TxBytes, p.TxBytes, 1, dt)
			r.RxPackets, resets[2] = counterRate(c.RxPackets, p.RxPackets, 1, dt)
			r.TxPackets, resets[3] = counterRate(c.TxPackets, p.TxPackets, 1, dt)
			r.Reset = resets[0] || resets[1] || resets[2] || resets[3]
		}

		out = append(out, r)
	}
	return out
}
