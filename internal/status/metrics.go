package status

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/GK-Developers/GK-Healter/internal/core"
)

// SystemMetrics is one sample of overall machine health.
type SystemMetrics struct {
	Hostname   string  `json:"hostname"`
	Distro     string  `json:"distro"`
	UptimeSecs uint64  `json:"uptime_seconds"`
	CPUPercent float64 `json:"cpu_percent"`
	Load1      float64 `json:"load_1m"`
	Load5      float64 `json:"load_5m"`
	Load15     float64 `json:"load_15m"`

	MemTotal   uint64  `json:"mem_total"`
	MemUsed    uint64  `json:"mem_used"`
	MemPercent float64 `json:"mem_percent"`

	DiskTotal   uint64  `json:"disk_total"`
	DiskUsed    uint64  `json:"disk_used"`
	DiskPercent float64 `json:"disk_percent"`
}

// Collect samples CPU, memory, root-disk and host metrics. Individual probe
// failures leave the corresponding fields zeroed rather than failing the
// whole sample.
func Collect() *SystemMetrics {
	m := &SystemMetrics{Distro: core.DistroString()}

	if info, err := host.Info(); err == nil {
		m.Hostname = info.Hostname
		m.UptimeSecs = info.Uptime
	}
	if pcts, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(pcts) > 0 {
		m.CPUPercent = pcts[0]
	}
	if avg, err := load.Avg(); err == nil {
		m.Load1, m.Load5, m.Load15 = avg.Load1, avg.Load5, avg.Load15
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		m.MemTotal = vm.Total
		m.MemUsed = vm.Used
		m.MemPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		m.DiskTotal = du.Total
		m.DiskUsed = du.Used
		m.DiskPercent = du.UsedPercent
	}
	return m
}

// FormatUptime renders an uptime in a compact "3d 4h 12m" form.
func FormatUptime(secs uint64) string {
	d := time.Duration(secs) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
