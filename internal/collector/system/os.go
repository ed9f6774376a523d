package system

import (
	"bufio"
	"os"
	"strings"
)

func (c *Collector) getOSName() string {
	f, err := os.Open(c.osRelease)
	if err != nil {
		c.log.Debug("failed to open os-release", "path", c.osRelease, "error", err)
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"'`)
		}
	}

	return ""
}
