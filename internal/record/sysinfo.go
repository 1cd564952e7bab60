// internal/record/sysinfo.go
package record

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemLoad is a best-effort snapshot of host load at record-build time.
// Available is false when the probe degraded to a no-op.
type SystemLoad struct {
	Available      bool    `json:"available"`
	CPUPercent     float64 `json:"cpuPercent,omitempty"`
	MemUsedPercent float64 `json:"memUsedPercent,omitempty"`
	MemTotalBytes  uint64  `json:"memTotalBytes,omitempty"`
}

// Prober abstracts the optional system-info capability. Callers never
// branch on the underlying implementation.
type Prober interface {
	Probe() SystemLoad
}

// GopsutilProber samples CPU and memory load via gopsutil. Any probe
// failure degrades to an unavailable snapshot instead of an error.
type GopsutilProber struct {
	// CPUInterval is the sampling window for the CPU measurement.
	CPUInterval time.Duration
}

func (p GopsutilProber) Probe() SystemLoad {
	interval := p.CPUInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	percents, err := cpu.Percent(interval, false)
	if err != nil || len(percents) == 0 {
		return SystemLoad{}
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return SystemLoad{}
	}
	return SystemLoad{
		Available:      true,
		CPUPercent:     percents[0],
		MemUsedPercent: vm.UsedPercent,
		MemTotalBytes:  vm.Total,
	}
}

// NoopProber is the degraded implementation used when system probing is
// unwanted or unavailable.
type NoopProber struct{}

func (NoopProber) Probe() SystemLoad { return SystemLoad{} }
