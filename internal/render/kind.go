package render

import (
	"sysdash/internal/domain"
)

var (
	wirelessNames = []string{"wl*", "wlan*", "ath*", "ra*"}
	tunnelNames   = []string{"tun*", "tap*", "wg*", "ppp*", "vpn"}
	virtualNames  = []string{"docker*", "veth*", "br-*", "virbr*", "vnet*", "cni*", "flannel*", "cali*"}
)

// InterfaceKind guesses what an interface is from its name.
func InterfaceKind(name string) string {
	switch {
	case name == "lo":
		return "loopback"
	case domain.MatchesName(name, wirelessNames):
		return "wireless"
	case domain.MatchesName(name, tunnelNames):
		return "tunnel"
	case domain.MatchesName(name, virtualNames):
		return "virtual"
	default:
		return "wired"
	}
}

var (
	mapperNames = []string{"dm-*"}
	raidNames   = []string{"md*"}
	loopNames   = []string{"loop*"}
	opticalName = []string{"sr*"}
	zramNames   = []string{"zram*"}
)

// DiskKind describes a block device for display.
func DiskKind(dev *domain.BlockDevice) string {
	if dev == nil {
		return ""
	}

	switch {
	case dev.IsPartition():
		return "part"
	case dev.DeviceMapperName != nil || domain.MatchesName(dev.Name, mapperNames):
		return "dm"
	case domain.MatchesName(dev.Name, raidNames):
		return "raid"
	case dev.LoopBackingFile != nil || domain.MatchesName(dev.Name, loopNames):
		return "loop"
	case domain.MatchesName(dev.Name, zramNames):
		return "zram"
	case domain.MatchesName(dev.Name, opticalName):
		return "rom"
	case dev.Removable != nil && *dev.Removable:
		return "usb"
	case dev.Rotational != nil && *dev.Rotational:
		return "hdd"
	case dev.Rotational != nil:
		return "ssd"
	default:
		return "disk"
	}
}
