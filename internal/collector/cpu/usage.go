package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sysdash/internal/logger"
)

// ParseStat collects the cpu lines of /proc/stat. Older kernels report
// fewer than 10 fields; the missing ones stay zero.
func ParseStat(r io.Reader, log logger.Logger) (CPUStats, error) {
	stats := CPUStats{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			continue
		}

		label, jiffies, err := parseCPULine(line)
		if err != nil {
			log.Debug("skipping cpu stat line", "line", line, "error", err)
			continue
		}
		stats[label] = jiffies
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func parseCPULine(line string) (string, CPUJiffies, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", CPUJiffies{}, fmt.Errorf("expected at least 4 counters, got %d", len(fields)-1)
	}

	var v [10]uint64
	for i, f := range fields[1:] {
		if i == len(v) {
			break
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return "", CPUJiffies{}, fmt.Errorf("field %d: %w", i, err)
		}
		v[i] = n
	}

	return fields[0], CPUJiffies{
		User:      v[0],
		Nice:      v[1],
		System:    v[2],
		Idle:      v[3],
		IOWait:    v[4],
		IRQ:       v[5],
		SoftIRQ:   v[6],
		Steal:     v[7],
		Guest:     v[8],
		GuestNice: v[9],
	}, nil
}
