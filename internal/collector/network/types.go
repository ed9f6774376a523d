package network

import (
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Collector struct {
	procRoot string
	log      logger.Logger

	// lookupDriver is nil when ethtool is unavailable.
	lookupDriver func(name string) (string, error)
	closeDriver  func() error
}

type NetDevs = domain.NetDevs
type NetDevCounters = domain.NetDevCounters
