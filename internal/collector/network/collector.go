// Package network reads interface counters from /proc/net/dev and decorates
// them with addresses and driver names.
package network

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safchain/ethtool"

	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

func NewCollector(procRoot string, log logger.Logger) *Collector {
	c := &Collector{procRoot: procRoot, log: log}

	eth, err := ethtool.NewEthtool()
	if err != nil {
		log.Debug("ethtool unavailable, driver names disabled", "error", err)
		return c
	}

	c.lookupDriver = func(name string) (string, error) {
		info, err := eth.DriverInfo(name)
		if err != nil {
			return "", err
		}
		return info.Driver, nil
	}
	c.closeDriver = func() error {
		eth.Close()
		return nil
	}
	return c
}

func (c *Collector) Close() error {
	if c.closeDriver == nil {
		return nil
	}
	return c.closeDriver()
}

// Collect returns the counter table. It fails only if the table cannot be
// opened.
func (c *Collector) Collect(ctx context.Context) (NetDevs, error) {
	path := filepath.Join(c.procRoot, "net", "dev")
	f, err := os.Open(path)
	if err != nil {
		c.log.Error("failed to open net dev table", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ParseNetDev(f, c.log)
}

// Interfaces decorates the names in devs with what the live interface
// enumeration knows about them.
func (c *Collector) Interfaces(ctx context.Context, devs NetDevs) map[string]domain.Interface {
	out := make(map[string]domain.Interface, len(devs))

	addrs, err := listAddresses()
	if err != nil {
		c.log.Warn("failed to enumerate interfaces", "error", err)
	}

	for _, name := range devs.Names() {
		iface := domain.Interface{Name: name}
		if a, ok := addrs[name]; ok {
			iface.MAC = a.mac
			iface.IPv4 = a.ipv4
			iface.IPv6 = a.ipv6
			iface.Up = a.up
		}

		if c.lookupDriver != nil {
			if driver, err := c.lookupDriver(name); err == nil {
				iface.Driver = driver
			} else {
				c.log.Debug("no driver info", "interface", name, "error", err)
			}
		}

		out[name] = iface
	}

	return out
}
