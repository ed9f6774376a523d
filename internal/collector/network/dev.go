package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sysdash/internal/logger"
)

// ParseNetDev reads the /proc/net/dev format: two header lines, then
// "name: 16 counters" per interface. Lines that do not parse are skipped.
func ParseNetDev(r io.Reader, log logger.Logger) (NetDevs, error) {
	devs := NetDevs{}

	scanner := bufio.NewScanner(r)
	// skip headers (first two lines)
	for i := 0; i < 2 && scanner.Scan(); i++ {
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, counters, err := parseLine(line)
		if err != nil {
			log.Debug("skipping net dev line", "line", line, "error", err)
			continue
		}
		devs[name] = counters
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return devs, nil
}

func parseLine(line string) (string, NetDevCounters, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", NetDevCounters{}, fmt.Errorf("missing colon")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", NetDevCounters{}, fmt.Errorf("empty interface name")
	}

	fields := strings.Fields(rest)
	if len(fields) != 16 {
		return "", NetDevCounters{}, fmt.Errorf("expected 16 counters, got %d", len(fields))
	}

	var v [16]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return "", NetDevCounters{}, fmt.Errorf("counter %d: %w", i, err)
		}
		v[i] = n
	}

	return name, NetDevCounters{
		RxBytes:      v[0],
		RxPackets:    v[1],
		RxErrors:     v[2],
		RxDropped:    v[3],
		RxFIFO:       v[4],
		RxFrame:      v[5],
		RxCompressed: v[6],
		RxMulticast:  v[7],
		TxBytes:      v[8],
		TxPackets:    v[9],
		TxErrors:     v[10],
		TxDropped:    v[11],
		TxFIFO:       v[12],
		TxCollisions: v[13],
		TxCarrier:    v[14],
		TxCompressed: v[15],
	}, nil
}
