package domain

import (
	"maps"
	"slices"
)

const SectorSize = 512

// IOCounters mirrors the 17 fields of a block device stat file.
type IOCounters struct {
	ReadIOs        uint64 `json:"read_ios" yaml:"read_ios"`
	ReadMerges     uint64 `json:"read_merges" yaml:"read_merges"`
	ReadSectors    uint64 `json:"read_sectors" yaml:"read_sectors"`
	ReadTicks      uint64 `json:"read_ticks" yaml:"read_ticks"`
	WriteIOs       uint64 `json:"write_ios" yaml:"write_ios"`
	WriteMerges    uint64 `json:"write_merges" yaml:"write_merges"`
	WriteSectors   uint64 `json:"write_sectors" yaml:"write_sectors"`
	WriteTicks     uint64 `json:"write_ticks" yaml:"write_ticks"`
	InFlight       uint64 `json:"in_flight" yaml:"in_flight"`
	IOTicks        uint64 `json:"io_ticks" yaml:"io_ticks"`
	TimeInQueue    uint64 `json:"time_in_queue" yaml:"time_in_queue"`
	DiscardIOs     uint64 `json:"discard_ios" yaml:"discard_ios"`
	DiscardMerges  uint64 `json:"discard_merges" yaml:"discard_merges"`
	DiscardSectors uint64 `json:"discard_sectors" yaml:"discard_sectors"`
	DiscardTicks   uint64 `json:"discard_ticks" yaml:"discard_ticks"`
	FlushIOs       uint64 `json:"flush_ios" yaml:"flush_ios"`
	FlushTicks     uint64 `json:"flush_ticks" yaml:"flush_ticks"`
}

// Temperature readings are in millidegrees Celsius.
type Temperature struct {
	Input   *int64 `json:"input,omitempty" yaml:"input,omitempty"`
	Lowest  *int64 `json:"lowest,omitempty" yaml:"lowest,omitempty"`
	Highest *int64 `json:"highest,omitempty" yaml:"highest,omitempty"`
}

// BlockDevice is one node of the block device tree. Nil pointer fields were
// not reported by the device.
type BlockDevice struct {
	Name             string  `json:"name" yaml:"name"`
	Model            *string `json:"model,omitempty" yaml:"model,omitempty"`
	Vendor           *string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	SizeBytes        uint64  `json:"size_bytes" yaml:"size_bytes"`
	Removable        *bool   `json:"removable,omitempty" yaml:"removable,omitempty"`
	Hidden           *bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	ReadOnly         *bool   `json:"read_only,omitempty" yaml:"read_only,omitempty"`
	Rotational       *bool   `json:"rotational,omitempty" yaml:"rotational,omitempty"`
	DeviceNumber     *string `json:"device_number,omitempty" yaml:"device_number,omitempty"`
	PartitionIndex   *uint64 `json:"partition_index,omitempty" yaml:"partition_index,omitempty"`
	DeviceMapperName *string `json:"device_mapper_name,omitempty" yaml:"device_mapper_name,omitempty"`
	LoopBackingFile  *string `json:"loop_backing_file,omitempty" yaml:"loop_backing_file,omitempty"`

	Temperature *Temperature `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Counters    *IOCounters  `json:"counters,omitempty" yaml:"counters,omitempty"`

	Children BlockDevices `json:"children,omitempty" yaml:"children,omitempty"`
	// Slaves are names only and are never followed.
	Slaves []string `json:"slaves,omitempty" yaml:"slaves,omitempty"`
}

// Path is the device node the mount table refers to.
func (d *BlockDevice) Path() string {
	if d.DeviceMapperName != nil && *d.DeviceMapperName != "" {
		return "/dev/mapper/" + *d.DeviceMapperName
	}
	return "/dev/" + d.Name
}

func (d *BlockDevice) IsPartition() bool {
	return d.PartitionIndex != nil
}

// BlockDevices maps a device name to its node. Names are unique per level only.
type BlockDevices map[string]*BlockDevice

// Names returns the keys in sorted order.
func (b BlockDevices) Names() []string {
	return slices.Sorted(maps.Keys(b))
}

// Walk visits every node depth first in name order.
func (b BlockDevices) Walk(fn func(depth int, dev *BlockDevice)) {
	b.walk(0, fn)
}

func (b BlockDevices) walk(depth int, fn func(int, *BlockDevice)) {
	for _, name := range b.Names() {
		dev := b[name]
		fn(depth, dev)
		dev.Children.walk(depth+1, fn)
	}
}

// Count returns the number of nodes in the tree.
func (b BlockDevices) Count() int {
	n := 0
	b.Walk(func(int, *BlockDevice) { n++ })
	return n
}
