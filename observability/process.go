package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a snapshot of the memory held by the current process.
type ProcessStats struct {
	RSSBytes   uint64
	AllocBytes uint64
	NumGC      uint32
}

// ReadProcessStats reports the resident set size seen by the OS along with
// the Go heap figures.
func ReadProcessStats() (ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessStats{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return ProcessStats{
		RSSBytes:   memInfo.RSS,
		AllocBytes: m.Alloc,
		NumGC:      m.NumGC,
	}, nil
}

// MegaBytes converts a byte count for display.
func MegaBytes(b uint64) float64 {
	return float64(b) / 1024 / 1024
}
