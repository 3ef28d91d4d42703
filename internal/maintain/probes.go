package maintain

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// powerSupplyPath is the sysfs root for power supply devices. A variable so
// tests can point it at a fixture tree.
var powerSupplyPath = "/sys/class/power_supply"

// OnACPower reports whether the machine is running on mains power. A host
// with no power supply entries (desktops, VMs) counts as mains-powered, and
// probe failures default to true so a broken sensor never blocks
// maintenance on its own.
func OnACPower() bool {
	entries, err := os.ReadDir(powerSupplyPath)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		base := filepath.Join(powerSupplyPath, entry.Name())
		kind, err := os.ReadFile(filepath.Join(base, "type"))
		if err != nil || strings.TrimSpace(string(kind)) != "Mains" {
			continue
		}
		online, err := os.ReadFile(filepath.Join(base, "online"))
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(online)) == "1"
	}
	return true
}

// IdleSeconds returns the current user idle time via xprintidle. When the
// probe is unavailable or fails it returns 0, i.e. the machine is treated
// as active and unattended maintenance is deferred.
func IdleSeconds() int {
	out, err := exec.Command("xprintidle").Output()
	if err != nil {
		return 0
	}
	ms, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0
	}
	return ms / 1000
}

// DiskUsedPercent returns the used percentage of the root filesystem.
func DiskUsedPercent() (float64, error) {
	usage, err := disk.Usage("/")
	if err != nil {
		return 0, err
	}
	return usage.UsedPercent, nil
}
