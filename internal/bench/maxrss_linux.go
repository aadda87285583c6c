//go:build linux

package bench

import (
	"os"
	"syscall"
)

// getrusage reports MaxRSS in kilobytes on Linux.
func maxRSSKB(ps *os.ProcessState) float64 {
	if ps == nil {
		return 0
	}
	ru, ok := ps.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil {
		return 0
	}
	return float64(ru.Maxrss)
}
