package cpu

import (
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Collector struct {
	procRoot string
	cpuRoot  string
	log      logger.Logger
}

type CPUStats = domain.CPUStats
type CPUJiffies = domain.CPUJiffies
