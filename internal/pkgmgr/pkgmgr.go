package pkgmgr

import (
	"os/exec"

	"go.uber.org/zap"
)

// Manager identifies an installed package manager family.
type Manager int

const (
	Unknown Manager = iota
	Apt
	Pacman
	Dnf
	Zypper
	Yum
)

// String returns the canonical lowercase name of the manager.
func (m Manager) String() string {
	switch m {
	case Apt:
		return "apt"
	case Pacman:
		return "pacman"
	case Dnf:
		return "dnf"
	case Zypper:
		return "zypper"
	case Yum:
		return "yum"
	default:
		return "unknown"
	}
}

// probeOrder is the fixed detection priority: apt-family first, then
// arch-family, rpm-family, suse-family, and the legacy yum fallback.
var probeOrder = []struct {
	binary  string
	manager Manager
}{
	{"apt-get", Apt},
	{"pacman", Pacman},
	{"dnf", Dnf},
	{"zypper", Zypper},
	{"yum", Yum},
}

// Detect probes PATH for known package-manager executables and returns the
// first match, or Unknown.
func Detect() Manager {
	return DetectFrom(exec.LookPath)
}

// DetectFrom is Detect with an injectable lookup, so tests can simulate an
// arbitrary environment.
func DetectFrom(lookPath func(string) (string, error)) Manager {
	for _, probe := range probeOrder {
		if _, err := lookPath(probe.binary); err == nil {
			zap.L().Debug("detected package manager", zap.String("manager", probe.manager.String()))
			return probe.manager
		}
	}
	zap.L().Debug("no known package manager found")
	return Unknown
}
