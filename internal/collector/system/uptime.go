package system

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (c *Collector) getUptime() float64 {
	path := filepath.Join(c.procRoot, "uptime")
	b, err := os.ReadFile(path)
	if err != nil {
		c.log.Debug("failed to read uptime", "path", path, "error", err)
		return 0
	}

	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		c.log.Warn("failed to parse uptime", "value", fields[0], "error", err)
		return 0
	}
	return secs
}
