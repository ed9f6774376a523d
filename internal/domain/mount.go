package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

type MountEntry struct {
	DevicePath    string `json:"device_path" yaml:"device_path"`
	MountPoint    string `json:"mount_point" yaml:"mount_point"`
	FSType        string `json:"fs_type" yaml:"fs_type"`
	Options       string `json:"options" yaml:"options"`
	DumpFrequency int    `json:"dump_frequency" yaml:"dump_frequency"`
	PassNumber    int    `json:"pass_number" yaml:"pass_number"`
}

var mtabEscaper = strings.NewReplacer(
	`\`, `\134`,
	" ", `\040`,
	"\t", `\011`,
	"\n", `\012`,
)

// String renders the entry as a mount table line.
func (m MountEntry) String() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		mtabEscaper.Replace(m.DevicePath),
		mtabEscaper.Replace(m.MountPoint),
		m.FSType,
		m.Options,
		m.DumpFrequency,
		m.PassNumber,
	)
}

// Mounts is keyed by device path, e.g. /dev/sda5 or /dev/mapper/vg-root.
type Mounts map[string]MountEntry

func (m Mounts) Paths() []string {
	return slices.Sorted(maps.Keys(m))
}

// Lookup finds the mount of a block device by its derived path.
func (m Mounts) Lookup(dev *BlockDevice) (MountEntry, bool) {
	e, ok := m[dev.Path()]
	return e, ok
}

// FSUsage is the statvfs view of a mounted filesystem.
type FSUsage struct {
	BlockSize       uint64 `json:"block_size" yaml:"block_size"`
	TotalBlocks     uint64 `json:"total_blocks" yaml:"total_blocks"`
	AvailableBlocks uint64 `json:"available_blocks" yaml:"available_blocks"`
}

func (u FSUsage) TotalBytes() uint64 {
	return u.BlockSize * u.TotalBlocks
}

func (u FSUsage) AvailableBytes() uint64 {
	return u.BlockSize * u.AvailableBlocks
}

func (u FSUsage) UsedBytes() uint64 {
	if u.AvailableBlocks > u.TotalBlocks {
		return 0
	}
	return u.BlockSize * (u.TotalBlocks - u.AvailableBlocks)
}

func (u FSUsage) PercentUsed() float64 {
	total := u.TotalBytes()
	if total == 0 {
		return 0
	}
	return float64(u.UsedBytes()) / float64(total) * 100
}
