// Package render turns a report into text for the terminal or into JSON
// and YAML for scripts.
package render

import (
	"fmt"
	"strings"
	"time"

	"sysdash/internal/domain"
)

const barWidth = 20

// Text renders the whole report. Width only affects the title rule.
func Text(r domain.Report, width int) string {
	var b strings.Builder

	writeHeader(&b, r, width)
	writeCPU(&b, r)
	writeMemory(&b, r.Memory)
	writeDisks(&b, r.Disks)
	writeInterfaces(&b, r.Interfaces)

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, r domain.Report, width int) {
	sys := r.System
	title := fmt.Sprintf("%s  %s  %s %s", sys.Hostname, sys.OS, sys.KernelVersion, sys.Arch)
	b.WriteString(titleStyle.Render(strings.TrimSpace(title)))
	b.WriteString("\n")

	if fw := firmware(sys); fw != "" {
		b.WriteString(dimStyle.Render(fw))
		b.WriteString("\n")
	}

	line := fmt.Sprintf("up %s  sampled %s", Uptime(sys.UptimeSeconds), r.TakenAt.Format("15:04:05"))
	if r.Interval > 0 {
		line += fmt.Sprintf("  every %s", r.Interval.Round(time.Millisecond))
	}
	b.WriteString(dimStyle.Render(line))
	b.WriteString("\n")

	if width > 0 {
		b.WriteString(dimStyle.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
	}
}

// firmware renders board and BIOS identity on one line, skipping blanks.
func firmware(sys domain.SystemInfo) string {
	var parts []string
	if !sys.Board.Empty() {
		parts = append(parts, joinNonEmpty("board", sys.Board.Vendor, sys.Board.Name, sys.Board.Version))
	}
	if !sys.BIOS.Empty() {
		parts = append(parts, joinNonEmpty("bios", sys.BIOS.Vendor, sys.BIOS.Version, sys.BIOS.Date))
	}
	return strings.Join(parts, "  ")
}

func joinNonEmpty(xs ...string) string {
	kept := xs[:0:0]
	for _, x := range xs {
		if x != "" {
			kept = append(kept, x)
		}
	}
	return strings.Join(kept, " ")
}

func writeCPU(b *strings.Builder, r domain.Report) {
	section(b, "CPU")

	if info := r.CPUInfo; info != nil {
		fmt.Fprintf(b, "%s %s  %d cores / %d threads\n", info.Vendor, info.Model, info.Cores, info.Threads)
	}

	for _, u := range r.CPU {
		busy := unknown
		bar := strings.Repeat(" ", barWidth)
		if u.Known {
			busy = Percent(u.Busy)
			bar = Bar(u.Busy, barWidth)
		}

		freq := ""
		if idx, ok := domain.CPUCoreIndex(u.Label); ok && r.CPUInfo != nil && idx < len(r.CPUInfo.FrequencyMHz) {
			if mhz := r.CPUInfo.FrequencyMHz[idx]; mhz > 0 {
				freq = fmt.Sprintf("%5d MHz", mhz)
			}
		}

		fmt.Fprintf(b, "%-6s %s %6s %s\n", u.Label, bar, busy, dimStyle.Render(freq))
	}
}

func writeMemory(b *strings.Builder, m *domain.MemInfo) {
	section(b, "Memory")
	if m == nil {
		b.WriteString(dimStyle.Render("unavailable"))
		b.WriteString("\n")
		return
	}

	fmt.Fprintf(b, "%-6s %s %6s  %s / %s\n", "mem", Bar(m.MemPercent(), barWidth), Percent(m.MemPercent()),
		Bytes(m.MemUsed()), Bytes(m.MemTotal))

	if m.SwapTotal > 0 {
		fmt.Fprintf(b, "%-6s %s %6s  %s / %s\n", "swap", Bar(m.SwapPercent(), barWidth), Percent(m.SwapPercent()),
			Bytes(m.SwapUsed()), Bytes(m.SwapTotal))
	}
}

func writeDisks(b *strings.Builder, disks []domain.DiskReport) {
	section(b, "Disks")
	fmt.Fprintf(b, "%-24s %-5s %9s %10s %10s %7s %6s  %s\n",
		"NAME", "KIND", "SIZE", "READ", "WRITE", "UTIL", "TEMP", "MOUNT")

	for i, d := range disks {
		writeDisk(b, d, "", i == len(disks)-1, true)
	}
}

func writeDisk(b *strings.Builder, d domain.DiskReport, prefix string, last, top bool) {
	branch, childPrefix := "", ""
	if !top {
		branch = "├─"
		childPrefix = prefix + "│ "
		if last {
			branch = "└─"
			childPrefix = prefix + "  "
		}
	}

	name := prefix + branch + d.Name
	if d.Reset {
		name += "*"
	}

	var size, temp string
	if d.Device != nil {
		size = Bytes(d.Device.SizeBytes)
		if d.Device.Temperature != nil {
			temp = Celsius(d.Device.Temperature.Input)
		}
	}

	fmt.Fprintf(b, "%-24s %-5s %9s %10s %10s %7s %6s  %s\n",
		name, DiskKind(d.Device), size,
		ByteRate(d.ReadBytes), ByteRate(d.WriteBytes), RatePercent(d.Utilization),
		temp, mountColumn(d))

	for i, c := range d.Children {
		writeDisk(b, c, childPrefix, i == len(d.Children)-1, false)
	}
}

func mountColumn(d domain.DiskReport) string {
	if d.Mount == nil {
		return ""
	}

	col := fmt.Sprintf("%s (%s)", d.Mount.MountPoint, d.Mount.FSType)
	switch {
	case d.Usage != nil:
		pct := d.Usage.PercentUsed()
		col += fmt.Sprintf(" %s of %s ", Bytes(d.Usage.UsedBytes()), Bytes(d.Usage.TotalBytes())) +
			levelStyle(pct).Render(strings.TrimSpace(Percent(pct)))
	case d.UsageError != "":
		col += " " + badStyle.Render("unavailable")
	}
	return col
}

func writeInterfaces(b *strings.Builder, ifaces []domain.InterfaceReport) {
	section(b, "Network")
	fmt.Fprintf(b, "%-16s %-9s %12s %12s %10s  %s\n", "NAME", "KIND", "RX", "TX", "DRIVER", "ADDRESSES")

	for _, r := range ifaces {
		name := r.Name
		if r.Reset {
			name += "*"
		}

		var driver, addrs string
		if iface := r.Interface; iface != nil {
			driver = iface.Driver
			addrs = strings.Join(append(append([]string{}, iface.IPv4...), iface.IPv6...), " ")
			if !iface.Up {
				name = dimStyle.Render(fmt.Sprintf("%-16s", name))
			}
		}

		fmt.Fprintf(b, "%-16s %-9s %12s %12s %10s  %s\n",
			name, InterfaceKind(r.Name), ByteRate(r.RxBytes), ByteRate(r.TxBytes), driver, addrs)
	}
}
