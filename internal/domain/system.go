package domain

type SystemInfo struct {
	Hostname      string  `json:"hostname" yaml:"hostname"`
	OS            string  `json:"os" yaml:"os"`
	KernelVersion string  `json:"kernel_version" yaml:"kernel_version"`
	Arch          string  `json:"arch" yaml:"arch"`
	UptimeSeconds float64 `json:"uptime_seconds" yaml:"uptime_seconds"`

	Board BoardInfo `json:"board" yaml:"board"`
	BIOS  BIOSInfo  `json:"bios" yaml:"bios"`
}

// BoardInfo and BIOSInfo come from the DMI tables. Fields the firmware
// leaves blank stay empty.
type BoardInfo struct {
	Vendor  string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

type BIOSInfo struct {
	Vendor  string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
}

func (b BoardInfo) Empty() bool {
	return b == BoardInfo{}
}

func (b BIOSInfo) Empty() bool {
	return b == BIOSInfo{}
}
