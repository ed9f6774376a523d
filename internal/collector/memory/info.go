package memory

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// readMemInfo converts the kB values of /proc/meminfo to bytes.
func (c *Collector) readMemInfo(r io.Reader) (*MemInfo, error) {
	info := &MemInfo{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		key := strings.TrimSuffix(fields[0], ":")
		valueKB, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			c.log.Warn("failed to parse meminfo value", "line", scanner.Text(), "error", err)
			continue
		}

		switch key {
		case "MemTotal":
			info.MemTotal = valueKB * 1024
		case "MemFree":
			info.MemFree = valueKB * 1024
		case "MemAvailable":
			info.MemAvailable = valueKB * 1024
		case "SwapTotal":
			info.SwapTotal = valueKB * 1024
		case "SwapFree":
			info.SwapFree = valueKB * 1024
		}
	}

	if err := scanner.Err(); err != nil {
		c.log.Warn("error reading meminfo", "error", err)
		return nil, err
	}

	return info, nil
}
