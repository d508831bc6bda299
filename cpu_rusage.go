//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package gridplan

import (
	"syscall"
	"time"
)

// processCPUTime is user plus system CPU consumed by the process so far.
func processCPUTime() time.Duration {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
}
