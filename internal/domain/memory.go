package domain

// MemInfo values are bytes.
type MemInfo struct {
	MemTotal     uint64 `json:"mem_total" yaml:"mem_total"`
	MemFree      uint64 `json:"mem_free" yaml:"mem_free"`
	MemAvailable uint64 `json:"mem_available" yaml:"mem_available"`
	SwapTotal    uint64 `json:"swap_total" yaml:"swap_total"`
	SwapFree     uint64 `json:"swap_free" yaml:"swap_free"`
}

func (m MemInfo) MemUsed() uint64 {
	if m.MemAvailable > m.MemTotal {
		return 0
	}
	return m.MemTotal - m.MemAvailable
}

func (m MemInfo) SwapUsed() uint64 {
	if m.SwapFree > m.SwapTotal {
		return 0
	}
	return m.SwapTotal - m.SwapFree
}

func (m MemInfo) MemPercent() float64 {
	if m.MemTotal == 0 {
		return 0
	}
	return float64(m.MemUsed()) / float64(m.MemTotal) * 100
}

func (m MemInfo) SwapPercent() float64 {
	if m.SwapTotal == 0 {
		return 0
	}
	return float64(m.SwapUsed()) / float64(m.SwapTotal) * 100
}
