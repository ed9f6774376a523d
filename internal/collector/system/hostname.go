package system

import "os"

func (c *Collector) getHostname() string {
	name, err := os.Hostname()
	if err != nil {
		c.log.Debug("failed to read hostname", "error", err)
		return "unknown"
	}

	return name
}
