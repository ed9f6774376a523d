package block

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sysdash/internal/domain"
)

// readTemperature uses the first hwmon sensor bound to the device only.
// The drivetemp module has to be loaded for disks to expose one.
func (c *Collector) readTemperature(path string) *domain.Temperature {
	root := filepath.Join(path, dirHwmon)
	hwmons, err := os.ReadDir(root)
	if err != nil || len(hwmons) == 0 {
		return nil
	}

	first := hwmons[0]
	if !strings.Contains(first.Name(), "hwmon") {
		return nil
	}

	dir := filepath.Join(root, first.Name())
	t := &domain.Temperature{
		Input:   c.readMillidegrees(dir, tempInput),
		Lowest:  c.readMillidegrees(dir, tempLowest),
		Highest: c.readMillidegrees(dir, tempHighest),
	}

	if t.Input == nil && t.Lowest == nil && t.Highest == nil {
		return nil
	}
	return t
}

func (c *Collector) readMillidegrees(dir, file string) *int64 {
	path := filepath.Join(dir, file)
	s, err := readTrimmed(path)
	if err != nil {
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		c.log.Warn("failed to parse disk temperature", "file", path, "error", err)
		return nil
	}
	return &v
}
