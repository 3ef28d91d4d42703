package catalog

import (
	"os"
	"path/filepath"

	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
)

// Category is one maintenance candidate location. Categories are built once
// at startup and never mutated afterwards.
type Category struct {
	// Label is the display name of the category.
	Label string

	// Path is the absolute location to scan, or a marker path standing
	// in for a package-manager action.
	Path string

	// System marks candidates that need privilege escalation to clean.
	System bool

	// Description explains what the category holds.
	Description string

	// Marker is true when Path is a symbolic key rather than a real
	// deletable location.
	Marker bool
}

// baseCategories are the universal entries present regardless of
// distribution: the system log tree, systemd crash dumps, and well-known
// per-user caches. Paths under home are resolved at build time.
func baseCategories(home string) []Category {
	return []Category{
		{
			Label:       "System logs",
			Path:        "/var/log",
			System:      true,
			Description: "Rotated and archived log files, truncated live logs, old journal entries",
		},
		{
			Label:       "Crash dumps",
			Path:        "/var/lib/systemd/coredump",
			System:      true,
			Description: "Core dumps collected by systemd-coredump",
		},
		{
			Label:       "Thumbnail cache",
			Path:        filepath.Join(home, ".cache", "thumbnails"),
			Description: "Image and video thumbnails generated by the file manager",
		},
		{
			Label:       "Firefox cache",
			Path:        filepath.Join(home, ".cache", "mozilla"),
			Description: "Mozilla Firefox browser cache",
		},
		{
			Label:       "Chrome cache",
			Path:        filepath.Join(home, ".cache", "google-chrome"),
			Description: "Google Chrome browser cache",
		},
	}
}

// Build assembles the catalog for the given package manager: the manager's
// cache and marker entries first (display priority), then the universal
// entries. Order affects presentation only, never safety decisions.
func Build(mgr pkgmgr.Manager, home string) []Category {
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	var cats []Category
	for _, t := range pkgmgr.Targets(mgr) {
		cats = append(cats, Category{
			Label:       t.Label,
			Path:        t.Path,
			System:      true,
			Description: t.Description,
			Marker:      t.IsMarker(),
		})
	}
	return append(cats, baseCategories(home)...)
}

// systemCommands maps the generic system categories to their privileged
// cleanup command lines. Rotated and compressed logs are deleted, live logs
// truncated in place, and the journal vacuumed; coredumps are removed
// wholesale. Distro-specific paths resolve through pkgmgr instead.
var systemCommands = map[string][]string{
	"/var/log": {"pkexec", "sh", "-c",
		"find /var/log -type f -regex '.*\\.\\(gz\\|[0-9]+\\)$' -delete && " +
			"find /var/log -type f -name '*.log' -exec truncate -s 0 {} + && " +
			"journalctl --vacuum-time=1s"},
	"/var/lib/systemd/coredump": {"pkexec", "sh", "-c", "rm -rf /var/lib/systemd/coredump/*"},
}

// SystemCommand returns the privileged cleanup command for a generic system
// category path, or nil when the path has none.
func SystemCommand(path string) []string {
	argv, ok := systemCommands[path]
	if !ok {
		return nil
	}
	return append([]string(nil), argv...)
}

// ResolveCommand maps a system category path or marker to its privileged
// command line: the detected manager's target table first, then the generic
// system commands. Nil means the path is not cleanable by command.
func ResolveCommand(mgr pkgmgr.Manager, path string) []string {
	if argv := pkgmgr.ResolveCommand(mgr, path); argv != nil {
		return argv
	}
	return SystemCommand(path)
}

// UserCacheRoot returns the root of the user's cache directory, the sole
// user-space subtree cleaning is ever permitted under.
func UserCacheRoot(home string) string {
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	return filepath.Join(home, ".cache")
}
