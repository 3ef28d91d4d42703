package pkgmgr

// TargetKind distinguishes the two cleanable-target shapes every manager
// exposes: a real on-disk package cache and a marker for the "remove
// orphaned/unused packages" action, which has no directory of its own.
type TargetKind int

const (
	KindPackageCache TargetKind = iota
	KindAutoremove
)

// markerRoot is where autoremove markers live. Markers are symbolic keys,
// never deleted as files, so the directory does not need to exist. It must
// stay outside every forbidden system prefix and outside every real cache
// directory so a marker can only ever be matched by exact string equality.
const markerRoot = "/var/lib/healter"

// Target is one cleanable target of a package manager. Each variant carries
// its own privileged command line, so a table entry without a command is
// visibly incomplete rather than silently unresolvable.
type Target struct {
	Kind        TargetKind
	Label       string
	Path        string
	Description string
	// Command is the literal argument vector executed to clean this
	// target. Empty means the manager has no supported command for it.
	Command []string
}

// IsMarker reports whether the target's path is a marker rather than a
// deletable directory.
func (t Target) IsMarker() bool {
	return t.Kind == KindAutoremove
}

// targetTables maps each manager to its cleanable targets. Commands come
// straight from each manager's documented cleanup operations; everything is
// run through pkexec except the pacman orphan removal, which inherently
// needs a shell pipeline.
var targetTables = map[Manager][]Target{
	Apt: {
		{
			Kind:        KindPackageCache,
			Label:       "Package cache",
			Path:        "/var/cache/apt/archives",
			Description: "Downloaded .deb package files",
			Command:     []string{"pkexec", "apt-get", "clean"},
		},
		{
			Kind:        KindAutoremove,
			Label:       "Unused packages",
			Path:        markerRoot + "/apt-autoremove",
			Description: "Automatically installed packages no longer needed",
			Command:     []string{"pkexec", "apt-get", "autoremove", "-y"},
		},
	},
	Pacman: {
		{
			Kind:        KindPackageCache,
			Label:       "Package cache",
			Path:        "/var/cache/pacman/pkg",
			Description: "Cached package archives",
			Command:     []string{"pkexec", "pacman", "-Scc", "--noconfirm"},
		},
		{
			Kind:        KindAutoremove,
			Label:       "Orphaned packages",
			Path:        markerRoot + "/pacman-orphans",
			Description: "Packages installed as dependencies and no longer required",
			Command:     []string{"sh", "-c", "pacman -Qtdq | xargs -r pkexec pacman -Rns --noconfirm"},
		},
	},
	Dnf: {
		{
			Kind:        KindPackageCache,
			Label:       "Package cache",
			Path:        "/var/cache/dnf",
			Description: "DNF metadata and package cache",
			Command:     []string{"pkexec", "dnf", "clean", "all"},
		},
		{
			Kind:        KindAutoremove,
			Label:       "Unused packages",
			Path:        markerRoot + "/dnf-autoremove",
			Description: "Automatically installed packages no longer needed",
			Command:     []string{"pkexec", "dnf", "autoremove", "-y"},
		},
	},
	Zypper: {
		{
			Kind:        KindPackageCache,
			Label:       "Package cache",
			Path:        "/var/cache/zypp/packages",
			Description: "Cached RPM packages",
			Command:     []string{"pkexec", "zypper", "clean", "--all"},
		},
		{
			// zypper has no one-shot autoremove. The marker is still
			// registered so the catalog shape stays uniform; resolving
			// it yields no command and the orchestrator reports the
			// item as an unknown system path.
			Kind:        KindAutoremove,
			Label:       "Unused packages",
			Path:        markerRoot + "/zypper-unneeded",
			Description: "Unneeded packages (not automatable with zypper)",
			Command:     nil,
		},
	},
}

// Targets returns the cleanable targets for the manager, in display order.
// Yum and Unknown have none.
func Targets(m Manager) []Target {
	return targetTables[m]
}

// CacheDirs returns the real (non-marker) cache directories registered for
// the manager.
func CacheDirs(m Manager) []string {
	var dirs []string
	for _, t := range targetTables[m] {
		if !t.IsMarker() {
			dirs = append(dirs, t.Path)
		}
	}
	return dirs
}

// MarkerPaths returns the marker paths registered for the manager.
func MarkerPaths(m Manager) []string {
	var markers []string
	for _, t := range targetTables[m] {
		if t.IsMarker() {
			markers = append(markers, t.Path)
		}
	}
	return markers
}

// ResolveCommand maps a path or marker already registered for the manager to
// its privileged command line. The path is compared by exact string equality
// against the target table; anything else yields nil, meaning "not
// resolvable".
func ResolveCommand(m Manager, path string) []string {
	for _, t := range targetTables[m] {
		if t.Path == path {
			if len(t.Command) == 0 {
				return nil
			}
			return append([]string(nil), t.Command...)
		}
	}
	return nil
}
