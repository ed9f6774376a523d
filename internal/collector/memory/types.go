package memory

import (
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Collector struct {
	procRoot string
	log      logger.Logger
}

type MemInfo = domain.MemInfo
