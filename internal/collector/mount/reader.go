// Package mount reads the mount table.
package mount

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

type Reader struct {
	path string
	log  logger.Logger
}

// NewReader reads path, normally /proc/self/mounts or /etc/mtab.
func NewReader(path string, log logger.Logger) *Reader {
	return &Reader{path: path, log: log}
}

func (r *Reader) Read(ctx context.Context) (domain.Mounts, error) {
	f, err := os.Open(r.path)
	if err != nil {
		r.log.Error("failed to open mount table", "path", r.path, "error", err)
		return nil, fmt.Errorf("open mount table: %w", err)
	}
	defer f.Close()

	mounts, err := Parse(f, r.log)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return mounts, nil
}

// Parse keys entries by device path. Malformed lines are skipped; when a
// device is mounted more than once the first line wins.
func Parse(rd io.Reader, log logger.Logger) (domain.Mounts, error) {
	mounts := domain.Mounts{}

	scanner := bufio.NewScanner(rd)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			log.Debug("skipping mount table line", "line", lineNo, "error", err)
			continue
		}

		if _, seen := mounts[entry.DevicePath]; seen {
			continue
		}
		mounts[entry.DevicePath] = entry
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mounts, nil
}

func ParseLine(line string) (domain.MountEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return domain.MountEntry{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	dump, err := strconv.Atoi(fields[4])
	if err != nil {
		return domain.MountEntry{}, fmt.Errorf("dump frequency: %w", err)
	}

	pass, err := strconv.Atoi(fields[5])
	if err != nil {
		return domain.MountEntry{}, fmt.Errorf("pass number: %w", err)
	}

	return domain.MountEntry{
		DevicePath:    unescape(fields[0]),
		MountPoint:    unescape(fields[1]),
		FSType:        fields[2],
		Options:       fields[3],
		DumpFrequency: dump,
		PassNumber:    pass,
	}, nil
}

// unescape decodes the \ooo octal sequences the kernel uses for blanks and
// backslashes in paths.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
