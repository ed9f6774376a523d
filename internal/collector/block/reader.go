package block

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sysdash/internal/domain"
)

func (c *Collector) build(path, name string, depth int) *BlockDevice {
	dev := &BlockDevice{
		Name:     name,
		Children: BlockDevices{},
	}

	if sectors, ok := c.readUint(path, fileSize); ok {
		dev.SizeBytes = sectors * domain.SectorSize
	}

	dev.Model = c.readString(path, fileModel)
	dev.Vendor = c.readString(path, fileVendor)
	dev.DeviceMapperName = c.readString(path, fileDMName)
	dev.LoopBackingFile = c.readString(path, fileBackingFile)
	dev.DeviceNumber = c.readString(path, fileDev)

	if idx, ok := c.readUint(path, filePartition); ok {
		dev.PartitionIndex = &idx
	}

	dev.Rotational = c.readBool(path, fileRotational)
	dev.ReadOnly = c.readBool(path, fileRO)
	dev.Removable = c.readBool(path, fileRemovable)
	dev.Hidden = c.readBool(path, fileHidden)

	dev.Temperature = c.readTemperature(path)
	dev.Counters = c.readCounters(path)
	dev.Slaves = c.readSlaves(path)

	if depth >= maxDepth {
		c.log.Warn("block device nesting too deep, not descending", "path", path, "depth", depth)
		return dev
	}

	c.addPartitions(dev, path, depth)
	c.addHolders(dev, path, depth)

	return dev
}

// addPartitions picks up entries inside the device directory whose name
// starts with the device name, e.g. /sys/block/sda/sda1.
func (c *Collector) addPartitions(dev *BlockDevice, path string, depth int) {
	entries, err := os.ReadDir(path)
	if err != nil {
		c.log.Debug("failed to list block device directory", "path", path, "error", err)
		return
	}

	for _, e := range entries {
		name := e.Name()
		if name == dev.Name || !strings.HasPrefix(name, dev.Name) {
			continue
		}

		childPath := filepath.Join(path, name)
		if !isDir(e, childPath) {
			continue
		}

		if _, exists := dev.Children[name]; exists {
			continue
		}
		dev.Children[name] = c.build(childPath, name, depth+1)
	}
}

// addHolders descends into devices stacked on top of this one.
func (c *Collector) addHolders(dev *BlockDevice, path string, depth int) {
	dir := filepath.Join(path, dirHolders)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Debug("failed to list holders", "path", dir, "error", err)
		}
		return
	}

	for _, e := range entries {
		name := e.Name()
		if _, exists := dev.Children[name]; exists {
			continue
		}
		dev.Children[name] = c.build(filepath.Join(dir, name), name, depth+1)
	}
}

func (c *Collector) readSlaves(path string) []string {
	entries, err := os.ReadDir(filepath.Join(path, dirSlaves))
	if err != nil {
		return nil
	}

	var slaves []string
	for _, e := range entries {
		slaves = append(slaves, e.Name())
	}
	return slaves
}

func isDir(e fs.DirEntry, path string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (c *Collector) readString(dir, file string) *string {
	s, err := readTrimmed(filepath.Join(dir, file))
	if err != nil || s == "" {
		return nil
	}
	return &s
}

func (c *Collector) readUint(dir, file string) (uint64, bool) {
	path := filepath.Join(dir, file)
	s, err := readTrimmed(path)
	if err != nil {
		return 0, false
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		c.log.Warn("failed to parse block attribute", "path", path, "error", err)
		return 0, false
	}
	return v, true
}

func (c *Collector) readBool(dir, file string) *bool {
	v, ok := c.readUint(dir, file)
	if !ok {
		return nil
	}
	b := v == 1
	return &b
}
