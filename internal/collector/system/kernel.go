package system

import (
	"golang.org/x/sys/unix"
)

func (c *Collector) getKernel() (release, machine string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		c.log.Debug("uname failed", "error", err)
		return "", ""
	}

	return unix.ByteSliceToString(uts.Release[:]), unix.ByteSliceToString(uts.Machine[:])
}
