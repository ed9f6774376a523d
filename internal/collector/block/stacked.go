package block

// HideStacked returns the top level without devices that already show up
// below another device, e.g. dm-0 as a holder of sda2. The input is not
// modified.
func HideStacked(devices BlockDevices) BlockDevices {
	nested := make(map[string]struct{})
	for _, dev := range devices {
		dev.Children.Walk(func(_ int, child *BlockDevice) {
			nested[child.Name] = struct{}{}
		})
	}

	out := make(BlockDevices, len(devices))
	for name, dev := range devices {
		if _, ok := nested[name]; ok {
			continue
		}
		out[name] = dev
	}
	return out
}
