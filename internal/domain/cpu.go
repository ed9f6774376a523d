package domain

import (
	"slices"
	"strconv"
	"strings"
)

// CPUJiffies holds cumulative ticks for one /proc/stat cpu line.
type CPUJiffies struct {
	User      uint64 `json:"user" yaml:"user"`
	Nice      uint64 `json:"nice" yaml:"nice"`
	System    uint64 `json:"system" yaml:"system"`
	Idle      uint64 `json:"idle" yaml:"idle"`
	IOWait    uint64 `json:"iowait" yaml:"iowait"`
	IRQ       uint64 `json:"irq" yaml:"irq"`
	SoftIRQ   uint64 `json:"softirq" yaml:"softirq"`
	Steal     uint64 `json:"steal" yaml:"steal"`
	Guest     uint64 `json:"guest" yaml:"guest"`
	GuestNice uint64 `json:"guest_nice" yaml:"guest_nice"`
}

func (j CPUJiffies) Work() uint64 {
	return j.User + j.Nice + j.System
}

func (j CPUJiffies) Total() uint64 {
	return j.User + j.Nice + j.System + j.Idle + j.IOWait +
		j.IRQ + j.SoftIRQ + j.Steal + j.Guest + j.GuestNice
}

// CPUStats is keyed by core label: "cpu" is the aggregate, "cpuN" a core.
type CPUStats map[string]CPUJiffies

// Labels returns "cpu" first, then cores in numeric order.
func (c CPUStats) Labels() []string {
	labels := make([]string, 0, len(c))
	for l := range c {
		labels = append(labels, l)
	}
	slices.SortFunc(labels, CompareCPULabels)
	return labels
}

func CompareCPULabels(a, b string) int {
	ia, oka := CPUCoreIndex(a)
	ib, okb := CPUCoreIndex(b)
	switch {
	case !oka && !okb:
		return strings.Compare(a, b)
	case !oka:
		return -1
	case !okb:
		return 1
	}
	return ia - ib
}

func CPUCoreIndex(label string) (int, bool) {
	if !strings.HasPrefix(label, "cpu") || label == "cpu" {
		return -1, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(label, "cpu"))
	if err != nil {
		return -1, false
	}
	return id, true
}

type CPUInfo struct {
	Vendor  string `json:"vendor" yaml:"vendor"`
	Model   string `json:"model" yaml:"model"`
	Cores   int    `json:"cores" yaml:"cores"`
	Threads int    `json:"threads" yaml:"threads"`
	// FrequencyMHz is indexed by core number; 0 when unknown.
	FrequencyMHz []int `json:"frequency_mhz,omitempty" yaml:"frequency_mhz,omitempty"`
}
