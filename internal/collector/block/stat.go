package block

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"sysdash/internal/domain"
)

func (c *Collector) readCounters(path string) *domain.IOCounters {
	file := filepath.Join(path, fileStat)
	s, err := readTrimmed(file)
	if err != nil {
		c.log.Debug("no stat file for block device", "path", file, "error", err)
		return nil
	}

	counters, err := ParseStat(s)
	if err != nil {
		c.log.Warn("failed to parse block device stat", "path", file, "error", err)
		return nil
	}
	return counters
}

// ParseStat parses a block device stat line. Kernels before 4.18 report 11
// fields and before 5.5 report 15; missing discard and flush counters are
// left at zero.
func ParseStat(line string) (*domain.IOCounters, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 11, 15, 17:
	default:
		return nil, fmt.Errorf("unexpected field count %d", len(fields))
	}

	v := make([]uint64, 17)
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		v[i] = n
	}

	return &domain.IOCounters{
		ReadIOs:        v[0],
		ReadMerges:     v[1],
		ReadSectors:    v[2],
		ReadTicks:      v[3],
		WriteIOs:       v[4],
		WriteMerges:    v[5],
		WriteSectors:   v[6],
		WriteTicks:     v[7],
		InFlight:       v[8],
		IOTicks:        v[9],
		TimeInQueue:    v[10],
		DiscardIOs:     v[11],
		DiscardMerges:  v[12],
		DiscardSectors: v[13],
		DiscardTicks:   v[14],
		FlushIOs:       v[15],
		FlushTicks:     v[16],
	}, nil
}
