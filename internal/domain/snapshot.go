package domain

import "time"

// Snapshot is everything sampled in one refresh cycle. It is built from
// scratch each cycle and never mutated afterwards.
type Snapshot struct {
	TakenAt time.Time `json:"taken_at" yaml:"taken_at"`

	Block  BlockDevices `json:"block" yaml:"block"`
	Mounts Mounts       `json:"mounts" yaml:"mounts"`
	// Usage and UsageErrors are keyed by mount point.
	Usage       map[string]FSUsage `json:"usage" yaml:"usage"`
	UsageErrors map[string]string  `json:"usage_errors,omitempty" yaml:"usage_errors,omitempty"`

	Net        NetDevs              `json:"net" yaml:"net"`
	Interfaces map[string]Interface `json:"interfaces" yaml:"interfaces"`

	CPU     CPUStats   `json:"cpu" yaml:"cpu"`
	CPUInfo *CPUInfo   `json:"cpu_info,omitempty" yaml:"cpu_info,omitempty"`
	Memory  *MemInfo   `json:"memory,omitempty" yaml:"memory,omitempty"`
	System  SystemInfo `json:"system" yaml:"system"`
}
