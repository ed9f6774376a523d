package block

import (
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

const (
	fileSize        = "size"
	fileModel       = "device/model"
	fileVendor      = "device/vendor"
	fileDMName      = "dm/name"
	fileBackingFile = "loop/backing_file"
	filePartition   = "partition"
	fileRotational  = "queue/rotational"
	fileRO          = "ro"
	fileRemovable   = "removable"
	fileHidden      = "hidden"
	fileDev         = "dev"
	fileStat        = "stat"

	dirHwmon   = "device/hwmon"
	dirHolders = "holders"
	dirSlaves  = "slaves"

	tempInput   = "temp1_input"
	tempLowest  = "temp1_lowest"
	tempHighest = "temp1_highest"

	// maxDepth bounds holder recursion; real stacks are a handful deep.
	maxDepth = 16
)

type Collector struct {
	root string
	log  logger.Logger
}

type BlockDevice = domain.BlockDevice
type BlockDevices = domain.BlockDevices
