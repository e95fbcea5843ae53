package host

import (
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// kernelBits reads the kernel's machine name so a 32-bit userland binary
// on a 64-bit kernel still sees a 64-bit host.
func kernelBits() int {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return strconv.IntSize
	}
	machine := unix.ByteSliceToString(uts.Machine[:])
	if strings.Contains(machine, "64") || machine == "s390x" {
		return 64
	}
	return 32
}
