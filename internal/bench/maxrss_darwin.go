//go:build darwin

package bench

import (
	"os"
	"syscall"
)

// getrusage reports MaxRSS in bytes on Darwin.
func maxRSSKB(ps *os.ProcessState) float64 {
	if ps == nil {
		return 0
	}
	ru, ok := ps.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil {
		return 0
	}
	return float64(ru.Maxrss) / 1024
}
