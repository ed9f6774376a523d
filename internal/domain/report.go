package domain

import "time"

// Rate is a per-second figure. Known is false when no rate could be
// computed for this cycle.
type Rate struct {
	Value float64 `json:"value" yaml:"value"`
	Known bool    `json:"known" yaml:"known"`
}

type DiskReport struct {
	Name   string       `json:"name" yaml:"name"`
	Path   string       `json:"path" yaml:"path"`
	Device *BlockDevice `json:"-" yaml:"-"`

	Mount      *MountEntry `json:"mount,omitempty" yaml:"mount,omitempty"`
	Usage      *FSUsage    `json:"usage,omitempty" yaml:"usage,omitempty"`
	UsageError string      `json:"usage_error,omitempty" yaml:"usage_error,omitempty"`

	ReadBytes   Rate `json:"read_bytes" yaml:"read_bytes"`
	WriteBytes  Rate `json:"write_bytes" yaml:"write_bytes"`
	Utilization Rate `json:"utilization" yaml:"utilization"`
	// Reset is set when a counter went backwards between samples, which
	// means the device was re-enumerated.
	Reset bool `json:"reset,omitempty" yaml:"reset,omitempty"`

	Children []DiskReport `json:"children,omitempty" yaml:"children,omitempty"`
}

type InterfaceReport struct {
	Name      string         `json:"name" yaml:"name"`
	Interface *Interface     `json:"interface,omitempty" yaml:"interface,omitempty"`
	Counters  NetDevCounters `json:"counters" yaml:"counters"`

	RxBytes   Rate `json:"rx_bytes" yaml:"rx_bytes"`
	TxBytes   Rate `json:"tx_bytes" yaml:"tx_bytes"`
	RxPackets Rate `json:"rx_packets" yaml:"rx_packets"`
	TxPackets Rate `json:"tx_packets" yaml:"tx_packets"`
	Reset     bool `json:"reset,omitempty" yaml:"reset,omitempty"`
}

type CPUUsage struct {
	Label string  `json:"label" yaml:"label"`
	Busy  float64 `json:"busy" yaml:"busy"`
	Known bool    `json:"known" yaml:"known"`
	Reset bool    `json:"reset,omitempty" yaml:"reset,omitempty"`
}

type Report struct {
	TakenAt  time.Time     `json:"taken_at" yaml:"taken_at"`
	Interval time.Duration `json:"interval" yaml:"interval"`

	Disks      []DiskReport      `json:"disks" yaml:"disks"`
	Interfaces []InterfaceReport `json:"interfaces" yaml:"interfaces"`
	CPU        []CPUUsage        `json:"cpu" yaml:"cpu"`
	CPUInfo    *CPUInfo          `json:"cpu_info,omitempty" yaml:"cpu_info,omitempty"`
	Memory     *MemInfo          `json:"memory,omitempty" yaml:"memory,omitempty"`
	System     SystemInfo        `json:"system" yaml:"system"`
}
